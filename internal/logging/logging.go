package logging

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New creates a zerolog logger writing to stderr. Stdout is reserved for
// the MCP stdio transport. Supports "trace" | "debug" | "info" | "warn" |
// "error" levels and "json" | "console" formats.
func New(level, format string, dev bool) *zerolog.Logger {
	return NewWithWriter(os.Stderr, level, format, dev)
}

func NewWithWriter(w io.Writer, level, format string, dev bool) *zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	out := w
	if strings.ToLower(format) == "console" || dev {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	base := zerolog.New(out).Level(lvl).With().Timestamp().Logger()
	return &base
}

type ctxKey string

const (
	ctxRequestID ctxKey = "request_id"
	ctxTool      ctxKey = "tool"
)

// With attaches request_id and tool from ctx when present.
func With(ctx context.Context, base *zerolog.Logger) *zerolog.Logger {
	l := base.With()
	if v, ok := ctx.Value(ctxRequestID).(string); ok {
		l = l.Str("request_id", v)
	}
	if v, ok := ctx.Value(ctxTool).(string); ok {
		l = l.Str("tool", v)
	}
	logger := l.Logger()
	return &logger
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxRequestID, id)
}

func WithTool(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, ctxTool, name)
}

// TraceDuration logs start and end with elapsed duration at TRACE level.
// Usage: defer logging.TraceDuration(logger, "UseResumeService.CreateResume")()
func TraceDuration(logger *zerolog.Logger, name string) func() {
	start := time.Now()
	logger.Trace().Str("method", name).Msg("start")
	return func() {
		logger.Trace().Str("method", name).Dur("duration", time.Since(start)).Msg("finish")
	}
}

// Redact keeps a short preview of a secret.
func Redact(s string) string {
	if len(s) <= 8 {
		return "***"
	}
	return s[:4] + "..." + s[len(s)-2:]
}

// Nop is a silent logger for tests and library callers.
func Nop() *zerolog.Logger {
	l := zerolog.Nop()
	return &l
}
