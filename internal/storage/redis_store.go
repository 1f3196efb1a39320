package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"btd_party/internal/app"
)

// RedisStore keeps the roster as one JSON blob under a single key,
// the same shape the browser calculator kept in local storage.
type RedisStore struct {
	rdb *redis.Client
	key string
}

// NewRedisStore connects to redisURL and checks the connection
func NewRedisStore(ctx context.Context, redisURL, key string) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &RedisStore{rdb: rdb, key: key}, nil
}

// NewRedisStoreFromClient wraps an existing redis.Client for use in tests
func NewRedisStoreFromClient(rdb *redis.Client, key string) *RedisStore {
	return &RedisStore{rdb: rdb, key: key}
}

// Load fetches the roster blob. A missing key is an empty roster.
func (s *RedisStore) Load(ctx context.Context) ([]app.Survivor, error) {
	data, err := s.rdb.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return []app.Survivor{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get roster: %w", err)
	}

	survivors := []app.Survivor{}
	if err := json.Unmarshal(data, &survivors); err != nil {
		return nil, fmt.Errorf("decode roster %s: %w", s.key, err)
	}
	return survivors, nil
}

// Save replaces the roster blob
func (s *RedisStore) Save(ctx context.Context, survivors []app.Survivor) error {
	if survivors == nil {
		survivors = []app.Survivor{}
	}
	data, err := json.Marshal(survivors)
	if err != nil {
		return fmt.Errorf("encode roster: %w", err)
	}
	if err := s.rdb.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("set roster: %w", err)
	}
	return nil
}

// Close closes the Redis connection
func (s *RedisStore) Close() error {
	return s.rdb.Close()
}
