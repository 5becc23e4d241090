package ratelimit

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "contestapi-ratelimit-"

// Fixed one minute window limiter shared between api replicas. Satisfies echo's RateLimiterStore.
type RedisLimiterStore struct {
	db         redis.Cmdable
	limiterKey string
	perMinute  int64
	failOpen   bool
}

type RedisLimiterConfig struct {
	RedisClient redis.Cmdable
	LimiterKey  string
	PerMinute   int64
	FailOpen    bool
}

func (store *RedisLimiterStore) Allow(identifier string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	key := keyPrefix + store.limiterKey + "-" + identifier

	// starts the window if there is none, otherwise keeps the running count and ttl
	err := store.db.SetNX(ctx, key, store.perMinute, time.Minute).Err()
	if err != nil {
		return store.failOpen, err
	}

	reqsLeft, err := store.db.Decr(ctx, key).Result()
	if err != nil {
		return store.failOpen, err
	}

	return reqsLeft >= 0, nil
}

func NewRedisLimitStore(config RedisLimiterConfig) *RedisLimiterStore {
	return &RedisLimiterStore{
		perMinute:  config.PerMinute,
		db:         config.RedisClient,
		limiterKey: config.LimiterKey,
		failOpen:   config.FailOpen,
	}
}
