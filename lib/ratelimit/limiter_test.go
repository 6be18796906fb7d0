package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMemoryLimiter(t *testing.T) {
	t.Run(`limit applies per key within the window`, func(t *testing.T) {
		now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
		l := NewMemoryLimiter()
		l.now = func() time.Time { return now }

		require.True(t, l.Allow("apply:worker-1", 2, time.Hour))
		require.True(t, l.Allow("apply:worker-1", 2, time.Hour))
		require.False(t, l.Allow("apply:worker-1", 2, time.Hour))
		require.True(t, l.Allow("apply:worker-2", 2, time.Hour))

		now = now.Add(time.Hour + time.Second)
		require.True(t, l.Allow("apply:worker-1", 2, time.Hour))
	})

	t.Run(`disabled limits always allow`, func(t *testing.T) {
		l := NewMemoryLimiter()
		for k := 0; k < 5; k++ {
			require.True(t, l.Allow("report:worker-1", 0, time.Hour))
		}
		require.True(t, l.Allow("", 1, time.Hour))
	})

	t.Run(`nil redis limiter allows`, func(t *testing.T) {
		var l *RedisLimiter
		require.True(t, l.Allow("apply:worker-1", 1, time.Hour))
	})
}
