package storage

import (
	"context"
	"encoding/json"
	"time"

	"github.com/astralvoyages/spacebooking/config"
	"github.com/astralvoyages/spacebooking/internal/domain"
	"github.com/redis/go-redis/v9"
)

type RedisStore struct {
	client     *redis.Client
	catalogTTL time.Duration
}

func NewRedisStore(cfg config.RedisConfig, catalogTTL time.Duration) *RedisStore {
	return &RedisStore{
		client:     redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		catalogTTL: catalogTTL,
	}
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, recordKey(key)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return data, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	return s.client.Set(ctx, recordKey(key), value, 0).Err()
}

func (s *RedisStore) Remove(ctx context.Context, key string) error {
	return s.client.Del(ctx, recordKey(key)).Err()
}

// GetDestinations returns the cached destination catalog, or nil on a miss.
func (s *RedisStore) GetDestinations(ctx context.Context) ([]domain.Destination, error) {
	data, err := s.client.Get(ctx, destinationsKey()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var destinations []domain.Destination
	if err := json.Unmarshal(data, &destinations); err != nil {
		return nil, err
	}
	return destinations, nil
}

func (s *RedisStore) SetDestinations(ctx context.Context, destinations []domain.Destination) error {
	payload, err := json.Marshal(destinations)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, destinationsKey(), payload, s.catalogTTL).Err()
}

func recordKey(key string) string {
	return "record:" + key
}

func destinationsKey() string {
	return "cache:destinations"
}

var _ Store = (*RedisStore)(nil)
