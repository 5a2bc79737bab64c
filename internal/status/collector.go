// Package status collects and displays the outcome of a cheatsheet run.
package status

import (
	"fmt"
	"os"

	"github.com/NikitaCOEUR/builtinsheet/internal/builtins"
	"github.com/NikitaCOEUR/builtinsheet/pkg/version"
)

// Collect gathers the run summary for the file written at path.
func Collect(path, format, configPath string, grouped builtins.Grouped) (*Data, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat cheatsheet: %w", err)
	}

	return &Data{
		Path:       path,
		Format:     format,
		Version:    version.Version,
		ConfigPath: configPath,
		Names:      grouped.Total(),
		Groups:     len(grouped),
		Keys:       grouped.Keys(),
		FileSize:   info.Size(),
	}, nil
}
