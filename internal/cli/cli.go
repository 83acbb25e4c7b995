package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/getarg/internal/app"
	"github.com/vk/getarg/internal/argtable"
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

const usage = `
getarg - Inspect how an argument vector is normalized.

Usage:
  getarg [options] -- [ARGUMENTS...]

Arguments:
  ARGUMENTS
    The argument vector to inspect. Flags may use one or two dashes, carry a
    value after '=', and be negated with a 'no' prefix (-noNAME).

Options:
  -eval=EXPR         HCL expression evaluated against the arguments; repeatable.
                     Variables: arg.NAME. Functions: has, str, int, bool, as.
  -format=FORMAT     Table output format: 'text' or 'json'. (default "text")
  -log-format=FORMAT Log output format: 'text' or 'json'. (default "text")
  -log-level=LEVEL   'debug', 'info', 'warn' or 'error'. (default "info")
  -h, -help          Show this help.
`

var knownOptions = map[string]bool{
	"-eval":       true,
	"-format":     true,
	"-log-format": true,
	"-log-level":  true,
	"-h":          true,
	"-help":       true,
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	options, subject, found := splitArgs(args)
	opts := argtable.Parse(options)

	for _, key := range opts.Names() {
		if !knownOptions[key] {
			return nil, false, &ExitError{Code: 2, Message: "flag provided but not defined: " + key}
		}
	}
	if opts.Has("-h") || opts.Has("-help") {
		fmt.Fprint(output, usage)
		return nil, true, nil
	}
	if !found {
		slog.Debug("No argument separator provided, printing usage and exiting.")
		fmt.Fprint(output, usage)
		return nil, true, nil
	}
	slog.Debug("Arguments parsed successfully.", "options", opts.Len(), "subject", len(subject))

	logFormat := strings.ToLower(opts.GetString("-log-format", "text"))
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(opts.GetString("-log-level", "info"))
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		LogFormat:    logFormat,
		LogLevel:     logLevel,
		OutputFormat: strings.ToLower(opts.GetString("-format", "text")),
		Expressions:  opts.Values("-eval"),
		Subject:      subject,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

// splitArgs divides args at the first bare "--". It reports whether the
// separator was present.
func splitArgs(args []string) (options, subject []string, found bool) {
	for i, arg := range args {
		if arg == "--" {
			return args[:i], args[i+1:], true
		}
	}
	return args, nil, false
}
