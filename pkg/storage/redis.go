package storage

import (
	"context"
	"errors"
	"time"
)

type redisClient interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

// Redis persists cart records in Redis under namespaced keys.
type Redis struct {
	client   redisClient
	notFound error
	ttl      time.Duration
}

// NewRedis wraps a redis client as a KV store. notFound is the client's
// missing-key sentinel (redis.Nil), mapped to ErrNotFound.
func NewRedis(client redisClient, notFound error, ttl time.Duration) *Redis {
	return &Redis{client: client, notFound: notFound, ttl: ttl}
}

func (r *Redis) Load(ctx context.Context, key string) ([]byte, error) {
	value, err := r.client.Get(ctx, key)
	if err != nil {
		if r.notFound != nil && errors.Is(err, r.notFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return []byte(value), nil
}

func (r *Redis) Save(ctx context.Context, key string, payload []byte) error {
	return r.client.Set(ctx, key, string(payload), r.ttl)
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key)
}
