// Package cli implements the builtinsheet commands.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/NikitaCOEUR/builtinsheet/internal/builtins"
	"github.com/NikitaCOEUR/builtinsheet/internal/cheatsheet"
	"github.com/NikitaCOEUR/builtinsheet/internal/config"
	"github.com/NikitaCOEUR/builtinsheet/internal/derrors"
	"github.com/NikitaCOEUR/builtinsheet/internal/logger"
	"github.com/NikitaCOEUR/builtinsheet/internal/status"
	"github.com/NikitaCOEUR/builtinsheet/internal/timing"
	"github.com/NikitaCOEUR/builtinsheet/internal/trace"
)

// CheatsheetParams holds parameters for the Cheatsheet function
type CheatsheetParams struct {
	LogLevel   string
	ConfigPath string
	// Out and Format override the configuration when non-empty.
	Out    string
	Format string
	// Source defaults to builtins.Universe.
	Source builtins.Source
	Stdout io.Writer
	Stderr io.Writer
}

// Cheatsheet writes the builtins cheatsheet and prints where it went
func Cheatsheet(ctx context.Context, params CheatsheetParams) error {
	log := logger.New(params.LogLevel, params.Stderr)
	stdout := params.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	timer := timing.NewTimer()

	cfg, configPath, err := config.Load(params.ConfigPath)
	if err != nil {
		return err
	}
	if dump, err := cfg.YAML(); err == nil {
		log.Debug().Str("config_file", configPath).Str("config", dump).Msg("Effective configuration")
	}
	timer.Mark("config")

	formatName := cfg.Format
	if params.Format != "" {
		formatName = params.Format
	}
	format, err := cheatsheet.ParseFormat(formatName)
	if err != nil {
		return derrors.NewValidationError("format", "invalid format", err)
	}

	requested := cfg.Out
	if params.Out != "" {
		requested = params.Out
	}
	out := cheatsheet.NormalizePath(requested, format)
	if out != requested {
		log.Info().Str("requested", requested).Str("path", out).Msg("Output extension adjusted to match format")
	}

	if format == cheatsheet.JSON && cfg.Header != "" {
		log.Warn().Str("config_file", configPath).Msg("Header template is ignored for json output")
	}

	var result *cheatsheet.Result
	trace.WithRegion(ctx, "write", func() {
		result, err = cheatsheet.Write(out, cheatsheet.WriteOptions{
			Options: cfg.RenderOptions(format),
			Source:  params.Source,
			Logger:  log,
		})
	})
	if err != nil {
		log.Error().Err(err).Str("path", out).Msg("Failed to write cheatsheet")
		return err
	}
	timer.Mark("write")

	data, err := status.Collect(result.Path, format.String(), configPath, result.Grouped)
	if err != nil {
		return err
	}
	if log.Level() == "debug" {
		data.Timing = timer.Summary()
	}

	_, err = fmt.Fprintln(stdout, status.Render(data))
	return err
}
