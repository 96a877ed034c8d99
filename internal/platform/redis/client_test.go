package redis

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"profiles/internal/platform/config"
)

func TestNewWithoutURL(t *testing.T) {
	c, err := New(context.Background(), config.RedisConfig{})
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestNewRejectsBadURL(t *testing.T) {
	_, err := New(context.Background(), config.RedisConfig{URL: "http://not-redis"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse redis URL")
}

func TestApplyOverrides(t *testing.T) {
	opts, err := redis.ParseURL("redis://localhost:6379/0")
	require.NoError(t, err)

	applyOverrides(opts, config.RedisConfig{PoolSize: 7, ReadTimeout: time.Second})

	assert.Equal(t, 7, opts.PoolSize)
	assert.Equal(t, time.Second, opts.ReadTimeout)
	assert.Zero(t, opts.MinIdleConns)
}
