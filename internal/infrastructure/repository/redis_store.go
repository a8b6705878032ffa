package repository

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps one string key per document, without expiry.
type RedisStore struct {
	client *redis.Client
	prefix string
}

func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) Load(ctx context.Context, name string) ([]byte, error) {
	body, err := s.client.Get(ctx, s.prefix+name).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}
	return body, nil
}

func (s *RedisStore) Save(ctx context.Context, name string, body []byte) error {
	return s.client.Set(ctx, s.prefix+name, body, 0).Err()
}
