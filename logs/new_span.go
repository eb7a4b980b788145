package logs

import (
	"context"
	"crypto/rand"
)

type NewSpan func(ctx context.Context, what string) (context.Context, Span)

func (Module) NewSpan(
	logger Logger,
) NewSpan {
	return func(ctx context.Context, what string) (context.Context, Span) {
		var args []any
		if v := ctx.Value(SpanKey); v != nil {
			args = append(args, "parent", v.(Span))
		}

		span := Span(rand.Text())
		ctx = context.WithValue(ctx, SpanKey, span)

		logger.DebugContext(ctx, "new span: "+what, args...)
		return ctx, span
	}
}
