package initializers

import (
	"context"
	"labourlink-backend/config"
	"labourlink-backend/lib/ratelimit"
	"time"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

var RedisClient *redis.Client

// InitRedis falls back to the in-process rate limiter when redis is absent or unreachable.
func InitRedis() {
	if config.Conf.Redis.Addr == "" {
		ratelimit.Init(nil)
		return
	}
	client := redis.NewClient(&redis.Options{
		Addr:     config.Conf.Redis.Addr,
		Password: config.Conf.Redis.Password,
		DB:       config.Conf.Redis.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.WithError(err).Error("redis is not reachable")
		_ = client.Close()
		ratelimit.Init(nil)
		return
	}
	RedisClient = client
	ratelimit.Init(client)
}
