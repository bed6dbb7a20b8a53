package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartFiresImmediatelyAndOnTicks(t *testing.T) {
	t.Parallel()

	fired := make(chan time.Time, 8)
	s := NewIntervalScheduler(10 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, s.Start(ctx, func(ts time.Time) { fired <- ts }))

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("job did not fire immediately")
	}

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("job did not fire on tick")
	}

	require.NoError(t, s.Stop(ctx))
}

func TestStartIgnoresNilJobAndZeroInterval(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	assert.NoError(t, NewIntervalScheduler(0).Start(ctx, func(time.Time) {}))
	assert.NoError(t, NewIntervalScheduler(time.Second).Start(ctx, nil))
}

func TestStopIsIdempotent(t *testing.T) {
	t.Parallel()

	s := NewIntervalScheduler(time.Hour)
	ctx := context.Background()

	require.NoError(t, s.Start(ctx, func(time.Time) {}))
	require.NoError(t, s.Stop(ctx))
	require.NoError(t, s.Stop(ctx))
}
