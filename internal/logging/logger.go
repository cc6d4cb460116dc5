// Package logging configures slog: JSON to stdout, trace correlation, and an
// optional database sink for errors.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"

	"go.opentelemetry.io/otel/trace"
)

// Setup installs a JSON logger on stdout as the default and returns its
// handler so callers can fan it out with more sinks. Debug records are kept
// outside production.
func Setup(production bool) slog.Handler {
	h := NewHandler(os.Stdout, production)
	slog.SetDefault(slog.New(h))
	return h
}

// NewHandler builds the stdout handler used by Setup.
func NewHandler(w io.Writer, production bool) slog.Handler {
	level := slog.LevelDebug
	if production {
		level = slog.LevelInfo
	}
	return &traceHandler{Handler: slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})}
}

// traceHandler adds trace_id and span_id when the record's context carries
// a sampled span.
type traceHandler struct {
	slog.Handler
}

func (h *traceHandler) Handle(ctx context.Context, r slog.Record) error {
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		r.AddAttrs(
			slog.String("trace_id", sc.TraceID().String()),
			slog.String("span_id", sc.SpanID().String()),
		)
	}
	return h.Handler.Handle(ctx, r)
}

func (h *traceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &traceHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *traceHandler) WithGroup(name string) slog.Handler {
	return &traceHandler{Handler: h.Handler.WithGroup(name)}
}
