// Package logging provides structured logging helpers built on log/slog.
//
// It defines the attribute keys shared across the codebase and the setup
// that routes log output to a file while the terminal UI is active.
package logging
