package tracing

import (
	"context"
	"errors"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestHook_ProcessHook(t *testing.T) {
	t.Parallel()
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	h := &Hook{tracer: tp.Tracer(instrumentationName)}

	ctx := context.Background()
	ok := h.ProcessHook(func(context.Context, redis.Cmder) error { return redis.Nil })
	failed := h.ProcessHook(func(context.Context, redis.Cmder) error { return errors.New("connection refused") })
	assert.ErrorIs(t, ok(ctx, redis.NewStringCmd(ctx, "get", "a")), redis.Nil)
	assert.Error(t, failed(ctx, redis.NewIntCmd(ctx, "incr", "b")))

	spans := recorder.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "redis.get", spans[0].Name())
	assert.Equal(t, codes.Unset, spans[0].Status().Code)
	assert.Equal(t, "redis.incr", spans[1].Name())
	assert.Equal(t, codes.Error, spans[1].Status().Code)
}
