// Package main is the entry point for the builtinsheet CLI application.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/NikitaCOEUR/builtinsheet/internal/cheatsheet"
	sheetcli "github.com/NikitaCOEUR/builtinsheet/internal/cli"
	"github.com/NikitaCOEUR/builtinsheet/internal/derrors"
	"github.com/NikitaCOEUR/builtinsheet/internal/greet"
	"github.com/NikitaCOEUR/builtinsheet/internal/logger"
	"github.com/NikitaCOEUR/builtinsheet/internal/trace"
	"github.com/NikitaCOEUR/builtinsheet/pkg/version"
)

const (
	exitError = 1
	exitUsage = 2
)

func main() {
	stop := trace.Init()
	code := run(context.Background(), os.Args, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the CLI and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if err := newApp(stdout, stderr).Run(ctx, args); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		if derrors.CodeOf(err) == "VALIDATION_ERROR" {
			return exitUsage
		}
		return exitError
	}
	return 0
}

func usageError(_ context.Context, _ *cli.Command, err error, _ bool) error {
	return derrors.NewValidationError("usage", "incorrect usage", err)
}

func isHelpArg(arg string) bool {
	return arg == "-h" || arg == "--help"
}

func newApp(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:                  "builtinsheet",
		Usage:                 "Write a cheatsheet of the Go builtin identifiers",
		Version:               version.String(),
		Writer:                stdout,
		ErrWriter:             stderr,
		EnableShellCompletion: true,
		OnUsageError:          usageError,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   logger.DefaultLevel,
				Usage:   "Log level (debug, info, warn, error)",
				Sources: cli.EnvVars("BUILTINSHEET_LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:      "config",
				Usage:     "Config file (defaults to $XDG_CONFIG_HOME/builtinsheet/config.{yml,yaml,toml,json})",
				TakesFile: true,
				Sources:   cli.EnvVars("BUILTINSHEET_CONFIG"),
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Present() {
				return derrors.NewValidationError("command", fmt.Sprintf("unknown command %q (run with --help)", cmd.Args().First()), nil)
			}
			return derrors.NewValidationError("command", "a command is required: greet or cheatsheet (run with --help)", nil)
		},
		Commands: []*cli.Command{
			{
				Name:      "greet",
				Usage:     "Print a greeting",
				ArgsUsage: "[name]",
				// Names are passed through untouched, empty or padded ones included.
				SkipFlagParsing: true,
				OnUsageError:    usageError,
				Action: func(_ context.Context, cmd *cli.Command) error {
					if cmd.Args().Len() == 1 && isHelpArg(cmd.Args().First()) {
						return cli.ShowSubcommandHelp(cmd)
					}
					if cmd.Args().Len() > 1 {
						return derrors.NewValidationError("name", fmt.Sprintf("greet takes at most one name, got %d", cmd.Args().Len()), nil)
					}

					name := greet.DefaultName
					if cmd.Args().Len() == 1 {
						name = cmd.Args().Get(0)
					}

					return sheetcli.Greet(sheetcli.GreetParams{
						Name:   name,
						Stdout: cmd.Root().Writer,
					})
				},
			},
			{
				Name:         "cheatsheet",
				Usage:        "Write the builtins cheatsheet to a file",
				OnUsageError: usageError,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:      "out",
						Aliases:   []string{"o"},
						Value:     "builtins_cheatsheet.txt",
						Usage:     "Output file path (extension is adjusted to the format)",
						TakesFile: true,
						Action: func(_ context.Context, _ *cli.Command, value string) error {
							if strings.TrimSpace(value) == "" {
								return derrors.NewValidationError("out", "--out must not be empty", nil)
							}
							return nil
						},
					},
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Value:   string(cheatsheet.Text),
						Usage:   "Output format: " + strings.Join(cheatsheet.FormatNames(), ", "),
						Action: func(_ context.Context, _ *cli.Command, value string) error {
							if _, err := cheatsheet.ParseFormat(value); err != nil {
								return derrors.NewValidationError("format", "invalid value for --format", err)
							}
							return nil
						},
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if cmd.Args().Present() {
						return derrors.NewValidationError("args", fmt.Sprintf("unexpected argument %q", cmd.Args().First()), nil)
					}

					// Unset flags leave the choice to the config file.
					params := sheetcli.CheatsheetParams{
						LogLevel:   cmd.String("log-level"),
						ConfigPath: cmd.String("config"),
						Stdout:     cmd.Root().Writer,
						Stderr:     cmd.Root().ErrWriter,
					}
					if cmd.IsSet("out") {
						params.Out = cmd.String("out")
					}
					if cmd.IsSet("format") {
						params.Format = cmd.String("format")
					}

					return sheetcli.Cheatsheet(ctx, params)
				},
			},
		},
	}
}
