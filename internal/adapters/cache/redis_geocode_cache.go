package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"store-locator-service/internal/domain"
)

// RedisGeocodeCache is a TTL-bounded cache mapping normalized postal
// codes to coordinates. The TTL bounds staleness: a moved address can be
// served stale coordinates for at most one TTL window, which cannot flip
// the nearest-store ranking for codes that have not physically moved.
type RedisGeocodeCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisGeocodeCache(rdb *redis.Client, ttl time.Duration) *RedisGeocodeCache {
	return &RedisGeocodeCache{rdb: rdb, ttl: ttl}
}

func key(code string) string { return "geocode:" + code }

func (c *RedisGeocodeCache) Get(ctx context.Context, code string) (domain.Coordinates, bool, error) {
	if c.rdb == nil {
		return domain.Coordinates{}, false, errors.New("geocode cache: client is nil")
	}

	val, err := c.rdb.Get(ctx, key(code)).Result()
	if errors.Is(err, redis.Nil) {
		return domain.Coordinates{}, false, nil
	}
	if err != nil {
		return domain.Coordinates{}, false, fmt.Errorf("get geocode cache: %w", err)
	}

	var coords domain.Coordinates
	if err := json.Unmarshal([]byte(val), &coords); err != nil {
		// A corrupt entry is treated as a miss so the pipeline re-geocodes.
		return domain.Coordinates{}, false, nil
	}

	return coords, true, nil
}

func (c *RedisGeocodeCache) Put(ctx context.Context, code string, coords domain.Coordinates) error {
	if c.rdb == nil {
		return errors.New("geocode cache: client is nil")
	}

	val, err := json.Marshal(coords)
	if err != nil {
		return fmt.Errorf("put geocode cache: marshal: %w", err)
	}

	if err := c.rdb.Set(ctx, key(code), val, c.ttl).Err(); err != nil {
		return fmt.Errorf("put geocode cache: %w", err)
	}

	return nil
}
