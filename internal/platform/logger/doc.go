// Package logger provides structured logging functionality for the application.
//
// It builds log/slog loggers from server configuration: JSON by default,
// colourised text via tint for local work, and optional rotation to a file via
// lumberjack. It also carries per-request loggers through context.Context.
package logger
