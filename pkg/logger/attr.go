package logger

import (
	"fmt"
	"log/slog"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Variable records an environment variable name under the key "variable".
// Values are never logged.
func Variable(name string) slog.Attr {
	return slog.String("variable", name)
}

// Kind records a data kind under the key "kind".
// If k is nil, it returns an empty Attr.
func Kind(k fmt.Stringer) slog.Attr {
	if k == nil {
		return slog.Attr{}
	}
	return slog.String("kind", k.String())
}

// Path records a file path under the key "path".
func Path(p string) slog.Attr {
	return slog.String("path", p)
}

// Paths records several file paths under the key "paths".
func Paths(ps ...string) slog.Attr {
	return slog.Any("paths", ps)
}

// Count records a count under the key "count".
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
