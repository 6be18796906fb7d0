package baseworker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	t.Run(`job runs until context is cancelled`, func(t *testing.T) {
		var runs int32
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go func() {
			NewInstance("test", time.Millisecond, time.Millisecond).Run(ctx, func(ctx context.Context) {
				if atomic.AddInt32(&runs, 1) == 3 {
					cancel()
				}
			})
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatal("worker did not stop")
		}
		require.GreaterOrEqual(t, atomic.LoadInt32(&runs), int32(3))
	})

	t.Run(`panic in job is recovered`, func(t *testing.T) {
		require.NotPanics(t, func() {
			NewInstance("test", time.Millisecond, time.Hour).Run(context.Background(), func(ctx context.Context) {
				panic("boom")
			})
		})
	})
}
