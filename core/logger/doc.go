// Package logger provides slog attribute helpers shared across the site core.
//
// Helpers follow the empty-Attr pattern: zero values produce an empty
// attribute that slog drops, so call sites can pass logger.Error(err)
// unconditionally.
package logger
