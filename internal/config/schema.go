package config

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/xeipuuv/gojsonschema"
)

// schemaDraft is the draft gojsonschema validates against.
const schemaDraft = "http://json-schema.org/draft-07/schema#"

// ValidationError represents a validation error with details
type ValidationError struct {
	Field   string
	Message string
}

// ValidationResult contains the results of config validation
type ValidationResult struct {
	Valid  bool
	Errors []ValidationError
}

// Error lists the violations, one per line.
func (r *ValidationResult) Error() string {
	msgs := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		msgs[i] = fmt.Sprintf("[%s] %s", e.Field, e.Message)
	}
	return strings.Join(msgs, "; ")
}

// Schema reflects the JSON Schema of Config.
func Schema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		Anonymous:      true,
		DoNotReference: true,
		ExpandedStruct: true,
	}
	s := r.Reflect(&Config{})
	s.Version = schemaDraft
	s.Title = "builtinsheet configuration"
	return s
}

// GetSchemaJSON returns the JSON Schema for builtinsheet configuration
func GetSchemaJSON() (string, error) {
	data, err := json.MarshalIndent(Schema(), "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode schema: %w", err)
	}
	return string(data), nil
}

// Validate checks decoded config data against the schema.
func Validate(data map[string]interface{}) (*ValidationResult, error) {
	schemaJSON, err := GetSchemaJSON()
	if err != nil {
		return nil, err
	}

	schemaLoader := gojsonschema.NewStringLoader(schemaJSON)
	documentLoader := gojsonschema.NewGoLoader(data)

	validationResult, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("schema validation error: %w", err)
	}

	result := &ValidationResult{
		Valid:  validationResult.Valid(),
		Errors: []ValidationError{},
	}
	for _, e := range validationResult.Errors() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   e.Field(),
			Message: e.Description(),
		})
	}
	return result, nil
}
