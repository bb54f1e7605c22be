package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/andrewkwatts-maker/PrincipiaMetaphysica-sub019/internal/app"
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

// envDefaults carries the environment-variable defaults for every flag.
// Flags always win over the environment.
type envDefaults struct {
	Manifest  string `env:"PM_MANIFEST"`
	DataDir   string `env:"PM_DATA_DIR"`
	Report    string `env:"PM_REPORT" envDefault:"validation_report.json"`
	Archive   string `env:"PM_ARCHIVE"`
	LogLevel  string `env:"PM_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"PM_LOG_FORMAT" envDefault:"text"`
	LogFile   string `env:"PM_LOG_FILE"`
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	var defaults envDefaults
	if err := env.Parse(&defaults); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	flagSet := flag.NewFlagSet("pmvalidate", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
pmvalidate - derivation registry and experimental validation runner.

Usage:
  pmvalidate [options] [MANIFEST_PATH]

Arguments:
  MANIFEST_PATH
    Path to a single .hcl manifest or a directory containing .hcl manifests.

Options:
`)
		flagSet.PrintDefaults()
	}

	manifestFlag := flagSet.String("manifest", "", "Path to the validation manifest file or directory.")
	mFlag := flagSet.String("m", "", "Path to the validation manifest file or directory (shorthand).")
	dataDirFlag := flagSet.String("data-dir", defaults.DataDir, "Base directory for experimental reference files. Defaults to the manifest's directory.")
	reportFlag := flagSet.String("report", defaults.Report, "Destination for the JSON report artifact. Empty skips the file.")
	archiveFlag := flagSet.String("archive", defaults.Archive, "SQLite archive for validation runs. Empty disables archiving.")
	logFormatFlag := flagSet.String("log-format", defaults.LogFormat, "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", defaults.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFileFlag := flagSet.String("log-file", defaults.LogFile, "Optional file receiving a JSON copy of the log stream.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	switch {
	case *manifestFlag != "":
		path = *manifestFlag
	case *mFlag != "":
		path = *mFlag
	case flagSet.NArg() > 0:
		path = flagSet.Arg(0)
	default:
		path = defaults.Manifest
	}
	slog.Debug("Manifest path determined.", "path", path)

	if path == "" {
		slog.Debug("No manifest path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
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
		ManifestPath: path,
		DataDir:      *dataDirFlag,
		ReportPath:   *reportFlag,
		ArchivePath:  *archiveFlag,
		LogFormat:    logFormat,
		LogLevel:     logLevel,
		LogFile:      *logFileFlag,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
