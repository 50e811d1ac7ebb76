package logs

import (
	"context"
	"crypto/rand"
)

type Span string

func SpanFrom(ctx context.Context) (Span, bool) {
	span, ok := ctx.Value(spanKey).(Span)
	return span, ok
}

type NewSpan func(ctx context.Context, parent Span) (context.Context, Span)

func (Module) NewSpan(
	logger Logger,
) NewSpan {
	return func(ctx context.Context, parent Span) (context.Context, Span) {
		creator, _ := SpanFrom(ctx)
		if parent == "" {
			parent = creator
		}

		span := Span(rand.Text())
		ctx = context.WithValue(ctx, spanKey, span)

		var args []any
		if creator != "" && creator != parent {
			args = append(args, "creator", creator)
		}
		if parent != "" {
			args = append(args, "parent", parent)
		}
		logger.DebugContext(ctx, "new span", args...)

		return ctx, span
	}
}
