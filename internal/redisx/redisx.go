package redisx

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// Dedup of consumed events: dedup:{service}:{event_id}
	KeyDedup = "dedup:%s:%s"

	// Alert flags set by the alerts worker, cleared by TTL.
	KeyLowStockAlert   = "alert:lowstock:%s"
	KeyOutOfStockAlert = "alert:outofstock:%s"
)

var (
	TTLDedup = 48 * time.Hour
	TTLAlert = 24 * time.Hour
)

func New(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         addr,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})
}

func Exists(ctx context.Context, rdb *redis.Client, key string) (bool, error) {
	n, err := rdb.Exists(ctx, key).Result()
	return n > 0, err
}
