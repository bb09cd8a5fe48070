package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/zeptools/sql-helper/kv"
)

func setupLiveKV(t *testing.T) *Client {
	t.Helper()
	c := &Client{Conf: &kv.Conf{Type: "redis", Host: "127.0.0.1", Port: 6379}}
	require.NoError(t, c.Init())
	if _, err := c.Exists(context.Background(), "probe"); err != nil {
		t.Skipf("Skipping test: redis not available: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestLiveGetSet(t *testing.T) {
	c := setupLiveKV(t)
	ctx := context.Background()

	_, err := c.Delete(ctx, "sqlhelper:test:k")
	require.NoError(t, err)

	_, found, err := c.Get(ctx, "sqlhelper:test:k")
	require.NoError(t, err)
	require.False(t, found)

	require.NoError(t, c.Set(ctx, "sqlhelper:test:k", "v", time.Minute))

	val, found, err := c.Get(ctx, "sqlhelper:test:k")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "v", val)

	exists, err := c.Exists(ctx, "sqlhelper:test:k")
	require.NoError(t, err)
	require.True(t, exists)

	updated, err := c.Expire(ctx, "sqlhelper:test:k", time.Second)
	require.NoError(t, err)
	require.True(t, updated)

	n, err := c.Delete(ctx, "sqlhelper:test:k")
	require.NoError(t, err)
	require.Equal(t, int64(1), n)
}

func TestCloseWithoutInit(t *testing.T) {
	c := &Client{Conf: &kv.Conf{Type: "redis"}}
	require.NoError(t, c.Close())
}
