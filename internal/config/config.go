// Package config handles loading and validation of builtinsheet configuration files.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/NikitaCOEUR/builtinsheet/internal/cheatsheet"
	"github.com/NikitaCOEUR/builtinsheet/internal/derrors"
)

//go:embed defaults.yml
var defaultsYAML []byte

// AppName is the directory name used under the XDG config home.
const AppName = "builtinsheet"

// SupportedConfigNames contains supported configuration file names (in order of preference)
var SupportedConfigNames = []string{
	"config.yml",
	"config.yaml",
	"config.toml",
	"config.json",
}

// LayoutConfig mirrors cheatsheet.Layout.
type LayoutConfig struct {
	Columns     int    `koanf:"columns" json:"columns,omitempty" yaml:"columns" jsonschema:"minimum=1,description=Names per row"`
	ColumnWidth int    `koanf:"column_width" json:"column_width,omitempty" yaml:"column_width" jsonschema:"minimum=0,description=Width each name is padded to"`
	Gap         int    `koanf:"gap" json:"gap,omitempty" yaml:"gap" jsonschema:"minimum=0,description=Spaces between columns"`
	RuleChar    string `koanf:"rule_char" json:"rule_char,omitempty" yaml:"rule_char" jsonschema:"minLength=1,description=Character repeated to draw text separators"`
	RuleWidth   int    `koanf:"rule_width" json:"rule_width,omitempty" yaml:"rule_width" jsonschema:"minimum=1,description=Length of text separators"`
}

// Config represents a builtinsheet configuration
type Config struct {
	Format       string       `koanf:"format" json:"format,omitempty" yaml:"format" jsonschema:"enum=text,enum=markdown,enum=json,description=Default output format"`
	Out          string       `koanf:"out" json:"out,omitempty" yaml:"out" jsonschema:"minLength=1,description=Default output path"`
	IncludeTotal bool         `koanf:"include_total" json:"include_total,omitempty" yaml:"include_total" jsonschema:"description=Append the total count line (text and markdown)"`
	Header       string       `koanf:"header" json:"header,omitempty" yaml:"header" jsonschema:"description=Go template rendered above the groups (sprig functions available)"`
	Layout       LayoutConfig `koanf:"layout" json:"layout,omitempty" yaml:"layout" jsonschema:"description=Column layout for text and markdown"`
}

// CheatsheetLayout converts the layout section.
func (c *Config) CheatsheetLayout() cheatsheet.Layout {
	return cheatsheet.Layout{
		Columns:     c.Layout.Columns,
		ColumnWidth: c.Layout.ColumnWidth,
		Gap:         c.Layout.Gap,
		RuleChar:    c.Layout.RuleChar,
		RuleWidth:   c.Layout.RuleWidth,
	}
}

// RenderOptions returns the render options for format built from c.
func (c *Config) RenderOptions(format cheatsheet.Format) cheatsheet.Options {
	return cheatsheet.Options{
		Format:       format,
		Layout:       c.CheatsheetLayout(),
		IncludeTotal: c.IncludeTotal,
		Header:       c.Header,
	}
}

// YAML dumps the effective configuration.
func (c *Config) YAML() (string, error) {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Defaults returns the built-in configuration.
func Defaults() (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(defaultsYAML), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}
	return unmarshal(k)
}

// GetConfigPath returns the first existing config file under the XDG config
// home, or "" when there is none.
func GetConfigPath() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}

	dir := filepath.Join(configHome, AppName)
	for _, name := range SupportedConfigNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", nil
}

// Load builds the effective configuration: embedded defaults, then the file at
// path. An empty path falls back to GetConfigPath; a missing default file is
// not an error. It returns the config and the file that was applied, if any.
func Load(path string) (*Config, string, error) {
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(defaultsYAML), yaml.Parser()); err != nil {
		return nil, "", fmt.Errorf("failed to load defaults: %w", err)
	}

	if path == "" {
		found, err := GetConfigPath()
		if err != nil {
			return nil, "", derrors.NewConfigurationError("", "failed to locate config file", err)
		}
		path = found
	} else if _, err := os.Stat(path); err != nil {
		return nil, "", derrors.NewConfigurationError(path, fmt.Sprintf("config file not found: %s", path), err)
	}

	if path != "" {
		fk, err := loadFile(path)
		if err != nil {
			return nil, "", err
		}
		if err := k.Merge(fk); err != nil {
			return nil, "", derrors.NewConfigurationError(path, "failed to merge config", err)
		}
	}

	cfg, err := unmarshal(k)
	if err != nil {
		return nil, "", derrors.NewConfigurationError(path, "failed to unmarshal config", err)
	}
	return cfg, path, nil
}

// loadFile parses path with the parser matching its extension and checks it
// against the schema.
func loadFile(path string) (*koanf.Koanf, error) {
	var parser koanf.Parser
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yml", ".yaml":
		parser = yaml.Parser()
	case ".toml":
		parser = toml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, derrors.NewConfigurationError(path, fmt.Sprintf("unsupported config format: %s", ext), nil)
	}

	fk := koanf.New(".")
	if err := fk.Load(file.Provider(path), parser); err != nil {
		return nil, derrors.NewConfigurationError(path, "failed to load config", err)
	}

	result, err := Validate(fk.Raw())
	if err != nil {
		return nil, derrors.NewConfigurationError(path, "failed to validate config", err)
	}
	if !result.Valid {
		return nil, derrors.NewConfigurationError(path, "invalid config", result)
	}
	return fk, nil
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
