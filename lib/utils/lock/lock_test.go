package lock

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestWithDelay(t *testing.T) {
	t.Run(`same key runs exclusively`, func(t *testing.T) {
		var active, maxActive int32
		wg := sync.WaitGroup{}
		for n := 0; n < 5; n++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				ok, err := WithDelay(context.Background(), "apply:w1:v1", 5*time.Second, func() error {
					cur := atomic.AddInt32(&active, 1)
					for {
						prev := atomic.LoadInt32(&maxActive)
						if cur <= prev || atomic.CompareAndSwapInt32(&maxActive, prev, cur) {
							break
						}
					}
					time.Sleep(5 * time.Millisecond)
					atomic.AddInt32(&active, -1)
					return nil
				})
				require.True(t, ok)
				require.NoError(t, err)
			}()
		}
		wg.Wait()
		require.Equal(t, int32(1), maxActive)
	})
	t.Run(`timeout while key is held`, func(t *testing.T) {
		release := make(chan struct{})
		started := make(chan struct{})
		go func() {
			_, _ = WithDelay(context.Background(), "held", time.Second, func() error {
				close(started)
				<-release
				return nil
			})
		}()
		<-started
		ok, err := WithDelay(context.Background(), "held", 100*time.Millisecond, func() error { return nil })
		close(release)
		require.False(t, ok)
		require.NoError(t, err)
	})
	t.Run(`error of the guarded code is returned`, func(t *testing.T) {
		ok, err := WithDelay(context.Background(), "err", time.Second, func() error { return errors.New("boom") })
		require.True(t, ok)
		require.EqualError(t, err, "boom")
	})
}

func TestResourceLock(t *testing.T) {
	t.Run(`second caller waits for release`, func(t *testing.T) {
		l := newResourceLock()
		require.True(t, l.Acquire(context.Background(), "a"))
		acquired := make(chan bool)
		go func() {
			acquired <- l.Acquire(context.Background(), "b")
		}()
		select {
		case <-acquired:
			t.Fatal("lock acquired while held")
		case <-time.After(50 * time.Millisecond):
		}
		l.Release("a")
		require.True(t, <-acquired)
		l.Release("b")
	})
	t.Run(`stop wakes waiters`, func(t *testing.T) {
		l := newResourceLock()
		require.True(t, l.Acquire(context.Background(), "a"))
		acquired := make(chan bool)
		go func() {
			acquired <- l.Acquire(context.Background(), "b")
		}()
		time.Sleep(20 * time.Millisecond)
		l.Stop()
		require.False(t, <-acquired)
		require.False(t, l.Acquire(context.Background(), "c"))
	})
}
