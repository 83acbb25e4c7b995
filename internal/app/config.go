package app

import (
	"errors"
	"fmt"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	LogFormat    string
	LogLevel     string
	OutputFormat string

	// Expressions are evaluated in order against the subject table. When
	// empty the table itself is printed.
	Expressions []string

	// Subject is the argument vector to inspect, without a program name.
	Subject []string
}

func NewConfig(cfg Config) (*Config, error) {
	switch cfg.OutputFormat {
	case "":
		cfg.OutputFormat = "text"
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid output format %q: must be 'text' or 'json'", cfg.OutputFormat)
	}

	for i, expr := range cfg.Expressions {
		if expr == "" {
			return nil, fmt.Errorf("expression %d is empty", i+1)
		}
	}

	if cfg.OutputFormat == "json" && len(cfg.Expressions) > 0 {
		return nil, errors.New("json output cannot be combined with expressions")
	}

	return &cfg, nil
}
