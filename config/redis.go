package config

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

var (
	RedisClient *redis.Client
	Ctx         = context.Background()
)

// ConnectRedis wires the shared Redis client used by the rate limiter.
// With an empty URL the client stays nil and rate limiting is skipped, so
// the storefront runs standalone in development.
func ConnectRedis(redisURL string) error {
	if redisURL == "" {
		logrus.Warn("⚠️ REDIS_URL not set, rate limiting disabled")
		return nil
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return err
	}

	RedisClient = redis.NewClient(opt)

	// test connection
	res, err := RedisClient.Ping(Ctx).Result()
	if err != nil {
		RedisClient = nil
		return err
	}
	logrus.Info("✅ Connected to Redis: ", res)
	return nil
}
