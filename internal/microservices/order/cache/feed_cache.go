package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	PendingFeedKey    = "kitchen:pending"
	PendingFeedGenKey = "kitchen:pending:gen"
)

// FeedCache holds the encoded kitchen feed between polls. Every Invalidate
// bumps a generation; Set only stores a feed read under the current one, so a
// list read before a change can never be cached after it.
type FeedCache interface {
	Get(ctx context.Context) ([]byte, bool, error)
	Generation(ctx context.Context) (int64, error)
	// Set stores feed when gen is still current. A stale gen is dropped silently.
	Set(ctx context.Context, gen int64, feed []byte) error
	Invalidate(ctx context.Context) error
}

type RedisFeedCache struct {
	rdb    *redis.Client
	key    string
	genKey string
	ttl    time.Duration
}

// NewRedisFeedCache keeps entries for ttl, which should not exceed the kitchen
// polling interval.
func NewRedisFeedCache(rdb *redis.Client, ttl time.Duration) *RedisFeedCache {
	return &RedisFeedCache{rdb: rdb, key: PendingFeedKey, genKey: PendingFeedGenKey, ttl: ttl}
}

func (c *RedisFeedCache) Get(ctx context.Context) ([]byte, bool, error) {
	b, err := c.rdb.Get(ctx, c.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get %s: %w", c.key, err)
	}
	return b, true, nil
}

func (c *RedisFeedCache) Generation(ctx context.Context) (int64, error) {
	gen, err := readGen(ctx, c.rdb, c.genKey)
	if err != nil {
		return 0, fmt.Errorf("redis get %s: %w", c.genKey, err)
	}
	return gen, nil
}

type stringGetter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func readGen(ctx context.Context, cmd stringGetter, key string) (int64, error) {
	gen, err := cmd.Get(ctx, key).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

var errStaleFeed = errors.New("feed generation changed")

func (c *RedisFeedCache) Set(ctx context.Context, gen int64, feed []byte) error {
	err := c.rdb.Watch(ctx, func(tx *redis.Tx) error {
		cur, err := readGen(ctx, tx, c.genKey)
		if err != nil {
			return err
		}
		if cur != gen {
			return errStaleFeed
		}
		_, err = tx.TxPipelined(ctx, func(p redis.Pipeliner) error {
			p.Set(ctx, c.key, feed, c.ttl)
			return nil
		})
		return err
	}, c.genKey)

	switch {
	case err == nil, errors.Is(err, errStaleFeed), errors.Is(err, redis.TxFailedErr):
		return nil
	default:
		return fmt.Errorf("redis set %s: %w", c.key, err)
	}
}

// Invalidate bumps the generation before dropping the feed, so a concurrent
// Set either fails its watch or lands before the delete.
func (c *RedisFeedCache) Invalidate(ctx context.Context) error {
	if err := c.rdb.Incr(ctx, c.genKey).Err(); err != nil {
		return fmt.Errorf("redis incr %s: %w", c.genKey, err)
	}
	if err := c.rdb.Del(ctx, c.key).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", c.key, err)
	}
	return nil
}
