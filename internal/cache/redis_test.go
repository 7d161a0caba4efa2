package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNilCacheIsPermanentMiss(t *testing.T) {
	var c *Cache

	val, ok := c.Get(context.Background(), "dashboard:x")
	require.False(t, ok)
	require.Nil(t, val)

	// Set and Close on a nil cache are no-ops, not panics.
	c.Set(context.Background(), "dashboard:x", []byte("{}"), time.Minute)
	require.NoError(t, c.Close())
}
