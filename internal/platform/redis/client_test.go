package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tpb/internal/platform/config"
)

func TestNew_NotConfigured(t *testing.T) {
	client, err := New(context.Background(), config.RedisConfig{})
	require.NoError(t, err)
	assert.Nil(t, client)
}

func TestNew_BadURL(t *testing.T) {
	_, err := New(context.Background(), config.RedisConfig{URL: "http://nope"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse redis URL")
}

func TestOptions(t *testing.T) {
	t.Run("config overrides", func(t *testing.T) {
		opts, err := options(config.RedisConfig{
			URL:          "redis://localhost:6379/2",
			PoolSize:     7,
			MinIdleConns: 1,
			DialTimeout:  time.Second,
			ReadTimeout:  2 * time.Second,
			WriteTimeout: 3 * time.Second,
		})
		require.NoError(t, err)
		assert.Equal(t, "localhost:6379", opts.Addr)
		assert.Equal(t, 2, opts.DB)
		assert.Equal(t, 7, opts.PoolSize)
		assert.Equal(t, 1, opts.MinIdleConns)
		assert.Equal(t, time.Second, opts.DialTimeout)
		assert.Equal(t, 2*time.Second, opts.ReadTimeout)
		assert.Equal(t, 3*time.Second, opts.WriteTimeout)
	})
}
