package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache TTLs
const (
	TTLGame    = 10 * time.Minute // game metadata pages
	TTLFeed    = 30 * time.Second // feed pages (refresh often)
	TTLPreview = 1 * time.Hour    // link previews change rarely
	TTLDefault = 5 * time.Minute
)

// Cache key prefixes
const (
	PrefixGame    = "game:"
	PrefixFeed    = "feed:"
	PrefixPreview = "preview:"
	PrefixUser    = "user:"
)

// ErrMiss is returned when a key is absent
var ErrMiss = errors.New("cache: miss")

// Service Redis cache service interface
type Service interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Exists(ctx context.Context, key string) (bool, error)

	// Game metadata cache
	GetGame(ctx context.Context, igdbID int64, dest interface{}) error
	SetGame(ctx context.Context, igdbID int64, data interface{}) error
	InvalidateGame(ctx context.Context, igdbID int64) error

	// Feed page cache
	GetFeedPage(ctx context.Context, key string, dest interface{}) error
	SetFeedPage(ctx context.Context, key string, data interface{}) error
	InvalidateFeed(ctx context.Context) error
}

type redisCache struct {
	client *redis.Client
}

// New creates a redis-backed cache service
func New(client *redis.Client) Service {
	return &redisCache{client: client}
}

func (c *redisCache) Get(ctx context.Context, key string, dest interface{}) error {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrMiss
		}
		return err
	}
	return json.Unmarshal(data, dest)
}

func (c *redisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if ttl <= 0 {
		ttl = TTLDefault
	}
	return c.client.Set(ctx, key, data, ttl).Err()
}

func (c *redisCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

func (c *redisCache) Exists(ctx context.Context, key string) (bool, error) {
	n, err := c.client.Exists(ctx, key).Result()
	return n > 0, err
}

func (c *redisCache) GetGame(ctx context.Context, igdbID int64, dest interface{}) error {
	return c.Get(ctx, gameKey(igdbID), dest)
}

func (c *redisCache) SetGame(ctx context.Context, igdbID int64, data interface{}) error {
	return c.Set(ctx, gameKey(igdbID), data, TTLGame)
}

func (c *redisCache) InvalidateGame(ctx context.Context, igdbID int64) error {
	return c.Delete(ctx, gameKey(igdbID))
}

func (c *redisCache) GetFeedPage(ctx context.Context, key string, dest interface{}) error {
	return c.Get(ctx, PrefixFeed+key, dest)
}

func (c *redisCache) SetFeedPage(ctx context.Context, key string, data interface{}) error {
	return c.Set(ctx, PrefixFeed+key, data, TTLFeed)
}

func (c *redisCache) InvalidateFeed(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, PrefixFeed+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	return c.Delete(ctx, keys...)
}

func gameKey(igdbID int64) string {
	return fmt.Sprintf("%s%d", PrefixGame, igdbID)
}
