package lib

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var redisClient *redis.Client

func GetRedisClient() *redis.Client {
	if redisClient != nil {
		return redisClient
	}
	redisHost := os.Getenv("REDIS_HOST")
	opt, err := redis.ParseURL(redisHost)
	if err != nil {
		log.Printf("[redis] Error parsing connection string: %s\n", err.Error())
		return nil
	}
	rdb := redis.NewClient(opt)
	redisClient = rdb
	return rdb
}

// NewRedisClient Replace redis instance with custom client implementation
func NewRedisClient(c *redis.Client) *redis.Client {
	redisClient = c
	return redisClient
}

const nameCacheTTL = 2 * time.Hour

// CacheGetName returns a cached display name for a hotel/package id.
// A nil client or a miss both come back empty; the cache is best effort.
func CacheGetName(ctx context.Context, key string) string {
	rdb := GetRedisClient()
	if rdb == nil {
		return ""
	}
	val, err := rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return ""
	} else if err != nil {
		log.Printf("[redis] Error retrieving value for %s: %s\n", key, err.Error())
		return ""
	}
	return val
}

func CacheSetName(ctx context.Context, key, name string) {
	rdb := GetRedisClient()
	if rdb == nil || name == "" {
		return
	}
	if err := rdb.SetEx(ctx, key, name, nameCacheTTL).Err(); err != nil {
		log.Printf("[redis] Failed to set value for key %s: %s\n", key, err)
	}
}
