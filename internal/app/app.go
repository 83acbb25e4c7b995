package app

import (
	"io"
	"log/slog"

	"github.com/vk/getarg/internal/argtable"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	tables *argtable.Holder
}

// NewApp is the constructor for the main application. Results are written to
// outW and log records to logW. The subject table is parsed once here and
// shared read-only with everything Run does.
func NewApp(outW, logW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	tables := argtable.NewHolder(nil)
	table := tables.Reset(cfg.Subject)
	logger.Debug("Subject arguments parsed.", "tokens", len(cfg.Subject), "keys", table.Len())

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		tables: tables,
	}
}

// Table returns the parsed subject table. This is primarily for testing.
func (a *App) Table() *argtable.Table {
	return a.tables.Load()
}
