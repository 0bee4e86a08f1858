package utils

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const flashTTL = 10 * time.Minute

// FlashStore holds one-shot notification messages between a redirect and the
// next page render.
type FlashStore interface {
	Add(ctx context.Context, token, message string) error
	Pop(ctx context.Context, token string) ([]string, error)
}

// OpenRedisPool initializes a Redis connection pool
func OpenRedisPool(dsn string) *redis.Client {
	opt, err := redis.ParseURL(dsn)
	if err != nil {
		log.Fatalf("Failed to parse Redis DSN: %v", err)
	}

	opt.PoolSize = 100
	opt.MinIdleConns = 2
	opt.DialTimeout = 5 * time.Second
	opt.ConnMaxIdleTime = 5 * time.Minute

	client := redis.NewClient(opt)
	if err = client.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("Failed to ping redis db 0: %v", err)
	}

	return client
}

// RedisFlashStore keeps each browser's pending flashes in a Redis list keyed
// by its flash token.
type RedisFlashStore struct {
	client *redis.Client
}

func NewRedisFlashStore(client *redis.Client) *RedisFlashStore {
	return &RedisFlashStore{client: client}
}

func (s *RedisFlashStore) Add(ctx context.Context, token, message string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	key := "flash:" + token
	if err := s.client.RPush(ctx, key, message).Err(); err != nil {
		return err
	}
	// Unread flashes expire rather than accumulating forever.
	return s.client.Expire(ctx, key, flashTTL).Err()
}

// Pop returns and clears the pending flashes for a token.
func (s *RedisFlashStore) Pop(ctx context.Context, token string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	key := "flash:" + token
	messages, err := s.client.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, err
	}
	if len(messages) == 0 {
		return nil, nil
	}
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return nil, err
	}
	return messages, nil
}
