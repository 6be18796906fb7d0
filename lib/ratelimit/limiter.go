package ratelimit

import (
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

type Limiter interface {
	Allow(key string, limit int, window time.Duration) bool
}

var Instance Limiter

// Init uses redis when a client is given, otherwise limits per process.
func Init(client *redis.Client) {
	if client != nil {
		Instance = NewRedisLimiter(client)
		log.Info("rate limiter uses redis")
		return
	}
	Instance = NewMemoryLimiter()
	log.Info("rate limiter uses process memory")
}

type MemoryLimiter struct {
	mu      sync.Mutex
	buckets *cache.Cache
	now     func() time.Time
}

type rateBucket struct {
	count     int
	windowEnd time.Time
}

func NewMemoryLimiter() *MemoryLimiter {
	return &MemoryLimiter{
		buckets: cache.New(time.Hour, 10*time.Minute),
		now:     time.Now,
	}
}

func (r *MemoryLimiter) Allow(key string, limit int, window time.Duration) bool {
	if key == "" || limit <= 0 || window <= 0 {
		return true
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	value, ok := r.buckets.Get(key)
	if !ok || now.After(value.(*rateBucket).windowEnd) {
		r.buckets.Set(key, &rateBucket{count: 1, windowEnd: now.Add(window)}, window)
		return true
	}
	bucket := value.(*rateBucket)
	if bucket.count >= limit {
		return false
	}
	bucket.count++
	return true
}
