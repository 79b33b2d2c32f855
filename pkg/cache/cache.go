package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TTL defaults
const (
	TTLBoardList   = 30 * time.Second
	TTLBoardDetail = 1 * time.Minute
	TTLGifs        = 5 * time.Minute
)

// Key prefixes
const (
	KeyBoardList = "boards:list"
	PrefixBoard  = "board:"
	PrefixGifs   = "gifs:"
)

// ErrUnavailable is returned by reads when no redis client is configured.
var ErrUnavailable = errors.New("redis not available")

// Service caches serialized API payloads in redis.
// A Service built with a nil client is a no-op: writes succeed and reads miss.
type Service interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error

	GetBoardList(ctx context.Context, dest interface{}) error
	SetBoardList(ctx context.Context, data interface{}) error
	GetBoard(ctx context.Context, boardID string, dest interface{}) error
	SetBoard(ctx context.Context, boardID string, data interface{}) error
	// InvalidateBoard drops the board detail and the list it appears in.
	InvalidateBoard(ctx context.Context, boardID string) error

	GetGifs(ctx context.Context, query string, limit int, dest interface{}) error
	SetGifs(ctx context.Context, query string, limit int, data interface{}) error

	IsAvailable() bool
	Ping(ctx context.Context) error
}

type redisCache struct {
	client    *redis.Client
	listTTL   time.Duration
	detailTTL time.Duration
	gifTTL    time.Duration
}

// Option tweaks a cache Service.
type Option func(*redisCache)

// WithBoardTTL overrides the list and detail TTLs. Zero keeps the default.
func WithBoardTTL(list, detail time.Duration) Option {
	return func(c *redisCache) {
		if list > 0 {
			c.listTTL = list
		}
		if detail > 0 {
			c.detailTTL = detail
		}
	}
}

// NewService creates a cache service; client may be nil.
func NewService(client *redis.Client, opts ...Option) Service {
	c := &redisCache{
		client:    client,
		listTTL:   TTLBoardList,
		detailTTL: TTLBoardDetail,
		gifTTL:    TTLGifs,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *redisCache) IsAvailable() bool {
	return c.client != nil
}

func (c *redisCache) Ping(ctx context.Context) error {
	if c.client == nil {
		return ErrUnavailable
	}
	return c.client.Ping(ctx).Err()
}

func (c *redisCache) Get(ctx context.Context, key string, dest interface{}) error {
	if c.client == nil {
		return ErrUnavailable
	}
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}

func (c *redisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if c.client == nil {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, ttl).Err()
}

func (c *redisCache) Delete(ctx context.Context, keys ...string) error {
	if c.client == nil || len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

// ========================================
// boards
// ========================================

func boardKey(boardID string) string {
	return PrefixBoard + boardID
}

func (c *redisCache) GetBoardList(ctx context.Context, dest interface{}) error {
	return c.Get(ctx, KeyBoardList, dest)
}

func (c *redisCache) SetBoardList(ctx context.Context, data interface{}) error {
	return c.Set(ctx, KeyBoardList, data, c.listTTL)
}

func (c *redisCache) GetBoard(ctx context.Context, boardID string, dest interface{}) error {
	return c.Get(ctx, boardKey(boardID), dest)
}

func (c *redisCache) SetBoard(ctx context.Context, boardID string, data interface{}) error {
	return c.Set(ctx, boardKey(boardID), data, c.detailTTL)
}

func (c *redisCache) InvalidateBoard(ctx context.Context, boardID string) error {
	if boardID == "" {
		return c.Delete(ctx, KeyBoardList)
	}
	return c.Delete(ctx, KeyBoardList, boardKey(boardID))
}

// ========================================
// gifs
// ========================================

func gifsKey(query string, limit int) string {
	if query == "" {
		return fmt.Sprintf("%strending:%d", PrefixGifs, limit)
	}
	return fmt.Sprintf("%ssearch:%s:%d", PrefixGifs, query, limit)
}

func (c *redisCache) GetGifs(ctx context.Context, query string, limit int, dest interface{}) error {
	return c.Get(ctx, gifsKey(query, limit), dest)
}

func (c *redisCache) SetGifs(ctx context.Context, query string, limit int, data interface{}) error {
	return c.Set(ctx, gifsKey(query, limit), data, c.gifTTL)
}
