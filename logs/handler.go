package logs

import (
	"context"
	"log/slog"
)

type ctxKey uint8

const (
	spanKey ctxKey = iota + 1
	executorKey
)

// Handler adds the span and executor slot carried by the context.
type Handler struct {
	slog.Handler
}

func (h *Handler) Handle(ctx context.Context, record slog.Record) error {
	if span, ok := SpanFrom(ctx); ok {
		record.Add("logs.span", span)
	}
	if id, ok := ExecutorFrom(ctx); ok {
		record.Add("executor", id)
	}
	return h.Handler.Handle(ctx, record)
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{
		Handler: h.Handler.WithAttrs(attrs),
	}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{
		Handler: h.Handler.WithGroup(name),
	}
}

func WithExecutor(ctx context.Context, id int) context.Context {
	return context.WithValue(ctx, executorKey, id)
}

func ExecutorFrom(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(executorKey).(int)
	return id, ok
}
