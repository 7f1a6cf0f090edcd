package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	clientName         = "holidaze"
	defaultDialTimeout = 3 * time.Second
)

// Config is the cache connection. DialTimeout bounds connecting and the startup
// ping; zero means 3s.
type Config struct {
	Addr        string
	Password    string
	DB          int
	DialTimeout time.Duration
}

func (c Config) options() *redis.Options {
	dial := c.DialTimeout
	if dial <= 0 {
		dial = defaultDialTimeout
	}

	return &redis.Options{
		Addr:        c.Addr,
		Password:    c.Password,
		DB:          c.DB,
		ClientName:  clientName,
		DialTimeout: dial,
	}
}

// New connects to the cache redis and pings it within the dial timeout. The
// client is closed if the ping fails.
func New(ctx context.Context, cfg Config) (*redis.Client, error) {
	const op = "redis.New"

	opts := cfg.options()
	client := redis.NewClient(opts)

	ctxPing, cancel := context.WithTimeout(ctx, opts.DialTimeout)
	defer cancel()

	if err := client.Ping(ctxPing).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return client, nil
}
