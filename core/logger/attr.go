package logger

import (
	"log/slog"
	"time"
)

// Attribute helpers return an empty Attr for zero values, so call sites never
// need nil checks: log.Info("msg", logger.Error(err)) is safe when err is nil.

// Error creates an attribute for a single error under the key "error".
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component identifies the subsystem emitting the log record.
func Component(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("component", name)
}

// Resource names the logical resource a data operation touches
// (properties, blogs, news, events, pricing).
func Resource(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("resource", name)
}

// UserID identifies the acting user.
func UserID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("user_id", id)
}

// URL records a request target.
func URL(u string) slog.Attr {
	if u == "" {
		return slog.Attr{}
	}
	return slog.String("url", u)
}

// Duration records elapsed time under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Mode records the active data source mode ("mock" or "live").
func Mode(mock bool) slog.Attr {
	if mock {
		return slog.String("mode", "mock")
	}
	return slog.String("mode", "live")
}
