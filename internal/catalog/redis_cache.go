package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const catalogKey = "catalog:games"

type redisCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisCache stores the catalog as a JSON array under a single key.
// A ttl of zero keeps the key forever.
func NewRedisCache(rdb *redis.Client, ttl time.Duration) Cache {
	return &redisCache{rdb: rdb, ttl: ttl}
}

func (r *redisCache) Get(ctx context.Context) ([]string, error) {
	data, err := r.rdb.Get(ctx, catalogKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("could not read catalog: %w", err)
	}
	var games []string
	if err := json.Unmarshal(data, &games); err != nil {
		return nil, fmt.Errorf("could not decode catalog: %w", err)
	}
	return games, nil
}

func (r *redisCache) Set(ctx context.Context, games []string) error {
	data, err := json.Marshal(games)
	if err != nil {
		return fmt.Errorf("could not encode catalog: %w", err)
	}
	return r.rdb.Set(ctx, catalogKey, data, r.ttl).Err()
}
