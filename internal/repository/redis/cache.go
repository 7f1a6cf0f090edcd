package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

// Cache is a JSON read-through cache over redis. A Cache built with a nil client
// keeps the singleflight deduplication but never stores anything, so the service
// layer runs unchanged without redis.
type Cache struct {
	rdb         redis.Cmdable
	sf          singleflight.Group
	loadTimeout time.Duration
}

const defaultLoadTimeout = 10 * time.Second

func New(client redis.Cmdable) *Cache {
	return &Cache{rdb: client, loadTimeout: defaultLoadTimeout}
}

func (c *Cache) Enabled() bool {
	return c != nil && c.rdb != nil
}

func (c *Cache) GetString(ctx context.Context, key string) (string, bool, error) {
	if !c.Enabled() {
		return "", false, nil
	}

	s, err := c.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}

	if err != nil {
		return "", false, err
	}

	return s, true, nil
}

func (c *Cache) SetString(
	ctx context.Context,
	key string,
	val string,
	ttl time.Duration,
) error {
	if !c.Enabled() {
		return nil
	}

	return c.rdb.Set(ctx, key, val, ttl).Err()
}

func (c *Cache) Del(ctx context.Context, keys ...string) error {
	if !c.Enabled() || len(keys) == 0 {
		return nil
	}

	return c.rdb.Del(ctx, keys...).Err()
}

func GetJSON[T any](ctx context.Context, c *Cache, key string) (T, bool, error) {
	var zero T

	s, ok, err := c.GetString(ctx, key)
	if err != nil || !ok {
		return zero, ok, err
	}

	var out T
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return zero, false, err
	}

	return out, true, nil
}

func SetJSON(
	ctx context.Context,
	c *Cache,
	key string,
	val any,
	ttl time.Duration,
) error {
	b, err := json.Marshal(val)
	if err != nil {
		return err
	}

	return c.SetString(ctx, key, string(b), ttl)
}

// GetOrSetJSON returns the cached value for key or loads, stores and returns it.
// Concurrent misses on the same key share one loader call. Redis failures are
// treated as misses; only loader errors reach the caller.
//
// The shared load is detached from the caller that started it and bounded by
// the cache's load timeout, so one cancelled request does not fail the others
// waiting on the same key. A caller whose ctx ends stops waiting with ctx.Err().
func GetOrSetJSON[T any](
	ctx context.Context,
	c *Cache,
	key string,
	ttl time.Duration,
	loader func(ctx context.Context) (T, error),
) (T, error) {
	var zero T

	if v, ok, err := GetJSON[T](ctx, c, key); err == nil && ok {
		return v, nil
	}

	ch := c.sf.DoChan(key, func() (any, error) {
		lctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.loadTimeout)
		defer cancel()

		if v, ok, err := GetJSON[T](lctx, c, key); err == nil && ok {
			return v, nil
		}

		v, err := loader(lctx)
		if err != nil {
			return nil, err
		}

		_ = SetJSON(lctx, c, key, v, ttl)

		return v, nil
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res = <-ch:
	}

	if res.Err != nil {
		return zero, res.Err
	}

	v, ok := res.Val.(T)
	if !ok {
		return zero, fmt.Errorf("cache: unexpected type %T for key %q", res.Val, key)
	}

	return v, nil
}

// InvalidateVenue drops the venue, its booked ranges and the full collection.
func (c *Cache) InvalidateVenue(ctx context.Context, venueID string) error {
	return c.Del(
		ctx,
		KeyVenuesAll(),
		KeyVenue(venueID),
		KeyVenueBookings(venueID),
	)
}
