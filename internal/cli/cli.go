package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/specialistvlad/finsheet/internal/app"
	"github.com/specialistvlad/finsheet/internal/config"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
//
// Values come from flags first, then from the settings file, then from the
// built-in defaults.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("finsheet", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
finsheet - Evaluates a financial model and prints its 24-month projection.

Usage:
  finsheet [options] [MODEL_PATH]

Arguments:
  MODEL_PATH
    Path to an .hcl file, a directory of .hcl files, or a .yaml, .yml or
    .json model document.

Options:
`)
		flagSet.PrintDefaults()
	}

	modelFlag := flagSet.String("model", "", "Path to the model file or directory.")
	mFlag := flagSet.String("m", "", "Path to the model file or directory (shorthand).")
	configFlag := flagSet.String("config", "", fmt.Sprintf("Path to a TOML settings file. Defaults to ./%s when present.", config.DefaultSettingsFile))
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	outputFlag := flagSet.String("output", "table", "Result format. Options: 'table' or 'json'.")
	startFlag := flagSet.String("starting-month", "", "Override the model's starting month (YYYY-MM).")
	sheetFlag := flagSet.String("sheet", "", "Print the rows of one sheet instead of the statement. Options: 'revenue' or 'cost'.")
	formulasFlag := flagSet.Bool("formulas", false, "List formulas in storage and readable form instead of evaluating them.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *modelFlag != "" {
		path = *modelFlag
	} else if *mFlag != "" {
		path = *mFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Model path determined.", "path", path)

	if path == "" {
		slog.Debug("No model path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	settings, err := loadSettings(*configFlag)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	set := make(map[string]bool)
	flagSet.Visit(func(f *flag.Flag) { set[f.Name] = true })
	pick := func(name, flagValue, fileValue string) string {
		if !set[name] && fileValue != "" {
			return fileValue
		}
		return flagValue
	}

	logFormat := strings.ToLower(pick("log-format", *logFormatFlag, settings.LogFormat))
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(pick("log-level", *logLevelFlag, settings.LogLevel))
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	cfg, err := app.NewConfig(app.Config{
		ModelPath:     path,
		LogFormat:     logFormat,
		LogLevel:      logLevel,
		Output:        strings.ToLower(pick("output", *outputFlag, settings.Output)),
		StartingMonth: pick("starting-month", *startFlag, settings.StartingMonth),
		Sheet:         strings.ToLower(*sheetFlag),
		ShowFormulas:  *formulasFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return cfg, false, nil
}

// loadSettings reads the settings file at path. Without a path the default
// file is read if it exists, and empty settings are returned otherwise.
func loadSettings(path string) (*config.Settings, error) {
	if path == "" {
		if _, err := os.Stat(config.DefaultSettingsFile); errors.Is(err, fs.ErrNotExist) {
			return &config.Settings{}, nil
		}
		path = config.DefaultSettingsFile
	}
	slog.Debug("Reading settings file.", "path", path)
	return config.LoadSettings(path)
}
