package context

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceRoundTrip(t *testing.T) {
	ctx := context.Background()
	assert.Nil(t, GetTrace(ctx))

	ctx = WithTrace(ctx, &TraceContext{TraceID: "trace-1", RequestID: "req-1"})

	got := GetTrace(ctx)
	require.NotNil(t, got)
	assert.Equal(t, "trace-1", got.TraceID)
	assert.Equal(t, "req-1", got.RequestID)
}
