// Package logging configures the process-wide slog logger.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"
)

// KeyComponent tags every record with the package that emitted it.
const KeyComponent = "component"

// switchableHandler lets package-level loggers created before Init
// pick up the configured handler once Init runs.
type switchableHandler struct {
	current *atomic.Value // stores handlerBox
	attrs   []slog.Attr
}

// handlerBox keeps the stored type constant for atomic.Value.
type handlerBox struct{ h slog.Handler }

func (h *switchableHandler) base() slog.Handler {
	handler := h.current.Load().(handlerBox).h
	if len(h.attrs) > 0 {
		handler = handler.WithAttrs(h.attrs)
	}
	return handler
}

func (h *switchableHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.base().Enabled(ctx, level)
}

func (h *switchableHandler) Handle(ctx context.Context, record slog.Record) error {
	return h.base().Handle(ctx, record)
}

func (h *switchableHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &switchableHandler{current: h.current, attrs: merged}
}

func (h *switchableHandler) WithGroup(name string) slog.Handler {
	return h.base().WithGroup(name)
}

var (
	current     = new(atomic.Value)
	rootHandler = &switchableHandler{current: current}
	root        = slog.New(rootHandler)
)

func init() {
	current.Store(handlerBox{slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})})
}

// Init installs the handler. format is "json" or "text", level one of
// debug, info, warn, error. A nil output means stderr.
func Init(format, level string, output io.Writer) {
	if output == nil {
		output = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	var handler slog.Handler
	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(output, opts)
	} else {
		handler = slog.NewTextHandler(output, opts)
	}
	current.Store(handlerBox{handler})
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	}
	return slog.LevelWarn
}

// L returns a logger tagged with the given component name.
func L(component string) *slog.Logger {
	return root.With(slog.String(KeyComponent, component))
}
