// Package logging configures slog for the moderation service: JSON to
// stdout, fanned out to an async Postgres handler that keeps ERROR records
// queryable from the admin panel.
package logging

import (
	"log/slog"
	"os"
)

// Setup installs the stdout JSON logger. main swaps in the multi-handler
// once the database connection exists, so engine and job errors land in
// system_logs too.
func Setup() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
}
