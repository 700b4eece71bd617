package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"tpb/internal/platform/config"
	"tpb/pkg/platform/sentinel"
)

const healthTimeout = 2 * time.Second

// Client is the shared connection behind persona caching, sessions and chat
// rate limits.
type Client struct {
	*redis.Client
}

// New connects using cfg.URL. An empty URL means Redis is not configured and
// yields a nil client so callers fall back to in-process stores.
func New(ctx context.Context, cfg config.RedisConfig) (*Client, error) {
	if cfg.URL == "" {
		return nil, nil
	}
	opts, err := options(cfg)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &Client{Client: client}, nil
}

func options(cfg config.RedisConfig) (*redis.Options, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}
	if cfg.PoolSize > 0 {
		opts.PoolSize = cfg.PoolSize
	}
	opts.MinIdleConns = cfg.MinIdleConns
	if cfg.DialTimeout > 0 {
		opts.DialTimeout = cfg.DialTimeout
	}
	if cfg.ReadTimeout > 0 {
		opts.ReadTimeout = cfg.ReadTimeout
	}
	if cfg.WriteTimeout > 0 {
		opts.WriteTimeout = cfg.WriteTimeout
	}
	return opts, nil
}

// Health pings with a short deadline so a stalled server cannot hold up
// /healthz.
func (c *Client) Health(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()
	if err := c.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("%w: %w", sentinel.ErrUnavailable, err)
	}
	return nil
}
