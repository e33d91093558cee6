package pagesync

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type countingRefresher struct {
	calls atomic.Int32
	err   error
}

func (c *countingRefresher) Refresh(ctx context.Context) (int, error) {
	c.calls.Add(1)
	return 3, c.err
}

func TestRunRefreshesUntilCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	pages := &countingRefresher{}

	done := make(chan error, 1)
	go func() { done <- Run(ctx, pages, 5*time.Millisecond) }()

	require.Eventually(t, func() bool { return pages.calls.Load() >= 3 }, time.Second, time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRunKeepsGoingOnError(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	pages := &countingRefresher{err: errors.New("db down")}

	require.NoError(t, Run(ctx, pages, 5*time.Millisecond))
	assert.Greater(t, pages.calls.Load(), int32(1))
}

func TestRunRefreshesImmediately(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	pages := &countingRefresher{}

	require.NoError(t, Run(ctx, pages, time.Hour))
	assert.Equal(t, int32(1), pages.calls.Load())
}
