package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/craftplan/internal/app"
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

// Parse processes command-line arguments. It returns a populated
// app.Config, a boolean indicating if the program should exit cleanly, or
// an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("craftplan", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
craftplan - a production-chain planner for crafting catalogs.

Usage:
  craftplan [options] [CATALOG_PATH]

Arguments:
  CATALOG_PATH
    Path to a single .hcl catalog file or a directory containing .hcl files.

Options:
`)
		flagSet.PrintDefaults()
	}

	catalogFlag := flagSet.String("catalog", "", "Path to the catalog file or directory.")
	cFlag := flagSet.String("c", "", "Path to the catalog file or directory (shorthand).")

	targets := quantityList{}
	flagSet.Var(&targets, "target", "Component to plan, as 'name' or 'name=units'. Repeatable.")

	speeds := multiplierList{}
	flagSet.Var(&speeds, "speed", "Producer speed multiplier, as 'category=multiplier'. Repeatable.")

	secondsFlag := flagSet.Float64("seconds", 1, "Time window in seconds for rate queries.")
	summarizeFlag := flagSet.Bool("summarize", false, "Print transitive ingredient totals instead of producer counts.")
	plainFlag := flagSet.Bool("plain", false, "Emit plain 'name : count' lines, counts rounded up.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *catalogFlag != "" {
		path = *catalogFlag
	} else if *cFlag != "" {
		path = *cFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Catalog path determined.", "path", path)

	if path == "" {
		slog.Debug("No catalog path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	if len(targets) == 0 {
		return nil, false, &ExitError{Code: 2, Message: "at least one -target is required"}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		CatalogPath: path,
		Targets:     targets,
		Seconds:     *secondsFlag,
		Summarize:   *summarizeFlag,
		Plain:       *plainFlag,
		Speeds:      speeds,
		LogFormat:   logFormat,
		LogLevel:    logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
