package cache

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/johnquangdev/meeting-insights/pkg/config"
)

// RedisStore backs the report cache with Redis. Cache failures are treated as
// misses; the caller recomputes rather than failing the request.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to Redis and verifies the connection
func NewRedisStore(cfg *config.Config) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	log.Println("✅ Redis connected successfully")

	return &RedisStore{client: client}, nil
}

// Set stores a key-value pair with expiration
func (rs *RedisStore) Set(ctx context.Context, key string, value string, expiration time.Duration) {
	if err := rs.client.Set(ctx, key, value, expiration).Err(); err != nil {
		log.Printf("redis set failed for key %s: %v", key, err)
	}
}

// Get retrieves a value by key
func (rs *RedisStore) Get(ctx context.Context, key string) (string, bool) {
	value, err := rs.client.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return value, true
}

// Delete removes a key
func (rs *RedisStore) Delete(ctx context.Context, key string) {
	if err := rs.client.Del(ctx, key).Err(); err != nil {
		log.Printf("redis delete failed for key %s: %v", key, err)
	}
}

// Close closes the Redis connection
func (rs *RedisStore) Close() error {
	return rs.client.Close()
}
