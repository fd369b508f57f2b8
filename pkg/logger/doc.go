// Package logger builds configured slog loggers and provides typed attribute
// helpers so that log keys stay consistent across the codebase. Helpers
// return an empty Attr for zero values, which slog drops silently.
package logger
