// Package logger builds configured log/slog loggers for the dashboard
// client: JSON or text output, level selection, and static service
// attributes via functional options.
package logger
