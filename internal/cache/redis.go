package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis stores entries as JSON strings with a TTL.
type Redis struct {
	rc  *redis.Client
	ttl time.Duration
}

// OpenRedis connects to the server named by url (redis://[:pass@]host:port/db).
// A ttl of 0 keeps entries forever.
func OpenRedis(url string, ttl time.Duration) (*Redis, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("cache: parse url: %w", err)
	}

	return NewRedis(redis.NewClient(opt), ttl), nil
}

// NewRedis wraps an existing client; Close closes it.
func NewRedis(rc *redis.Client, ttl time.Duration) *Redis {
	return &Redis{rc: rc, ttl: ttl}
}

// Ping checks connectivity.
func (r *Redis) Ping(ctx context.Context) error {
	return r.rc.Ping(ctx).Err()
}

func (r *Redis) Get(ctx context.Context, key string) (Entry, error) {
	s, err := r.rc.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return Entry{}, ErrMiss
	}
	if err != nil {
		return Entry{}, fmt.Errorf("cache: get %s: %w", key, err)
	}

	var e Entry
	if err = json.Unmarshal([]byte(s), &e); err != nil {
		return Entry{}, fmt.Errorf("cache: decode %s: %w", key, err)
	}

	return e, nil
}

func (r *Redis) Put(ctx context.Context, key string, e Entry) error {
	b, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("cache: encode %s: %w", key, err)
	}
	if err = r.rc.Set(ctx, key, string(b), r.ttl).Err(); err != nil {
		return fmt.Errorf("cache: set %s: %w", key, err)
	}

	return nil
}

func (r *Redis) Close() error {
	return r.rc.Close()
}
