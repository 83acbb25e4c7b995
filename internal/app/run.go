package app

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/vk/getarg/internal/argexpr"
	"github.com/vk/getarg/internal/argtable"
	"github.com/vk/getarg/internal/ctxlog"
)

// Run executes the main application logic based on the provided configuration.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	table := a.tables.Load()

	var err error
	if len(a.config.Expressions) > 0 {
		err = a.evaluate(ctx, table)
	} else {
		err = a.dump(ctx, table)
	}
	if err != nil {
		return err
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// evaluate prints one rendered line per configured expression.
func (a *App) evaluate(ctx context.Context, table *argtable.Table) error {
	logger := ctxlog.FromContext(ctx)

	for i, src := range a.config.Expressions {
		if err := ctx.Err(); err != nil {
			return err
		}
		val, err := argexpr.Evaluate(table, src)
		if err != nil {
			return fmt.Errorf("expression %d: %w", i+1, err)
		}
		out, err := argexpr.Render(val)
		if err != nil {
			return fmt.Errorf("expression %d: %w", i+1, err)
		}
		logger.Debug("Expression evaluated.", "index", i+1, "type", val.Type().FriendlyName())
		fmt.Fprintln(a.outW, out)
	}
	return nil
}

// dump prints the whole table in the configured output format.
func (a *App) dump(ctx context.Context, table *argtable.Table) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Printing argument table.", "format", a.config.OutputFormat, "keys", table.Len())

	if a.config.OutputFormat == "json" {
		for _, key := range table.Keys() {
			if !utf8.ValidString(key) || !utf8.ValidString(table.GetString(key, "")) {
				logger.Warn("Argument is not valid UTF-8; invalid bytes are written as U+FFFD.", "key", key)
			}
		}
		out, err := argexpr.MarshalJSON(table)
		if err != nil {
			return fmt.Errorf("failed to encode argument table: %w", err)
		}
		fmt.Fprintln(a.outW, string(out))
		return nil
	}

	if table.Len() == 0 {
		logger.Warn("No flags found in the subject arguments.")
		return nil
	}
	for _, key := range table.Keys() {
		if v := table.GetString(key, ""); v != "" {
			fmt.Fprintf(a.outW, "%s=%s\n", key, v)
		} else {
			fmt.Fprintln(a.outW, key)
		}
	}
	return nil
}
