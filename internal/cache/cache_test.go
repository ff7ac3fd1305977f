package cache

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *clock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *clock) advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func newTestCache(t *testing.T, ttl time.Duration) (*Cache, *clock) {
	t.Helper()
	clk := &clock{t: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
	c := New(ttl, 0)
	c.now = clk.now
	t.Cleanup(c.Close)
	return c, clk
}

func TestSetAndExpire(t *testing.T) {
	c, clk := newTestCache(t, time.Minute)

	c.Set("a", 1)
	c.Set("b", 2, time.Hour)

	v, ok := c.GetValue("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	clk.advance(2 * time.Minute)
	_, ok = c.GetValue("a")
	assert.False(t, ok)

	v, ok = c.GetValue("b")
	assert.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestDeleteExpiredSweepsOnlyExpired(t *testing.T) {
	c, clk := newTestCache(t, time.Minute)
	c.Set("short", "x")
	c.Set("long", "y", time.Hour)

	clk.advance(5 * time.Minute)
	c.deleteExpired()

	assert.Len(t, c.items, 1)
	_, ok := c.items["long"]
	assert.True(t, ok)
}

func TestGetOrCreateRenewsTTL(t *testing.T) {
	c, clk := newTestCache(t, time.Minute)
	calls := 0
	create := func() any {
		calls++
		return calls
	}

	assert.Equal(t, 1, c.GetOrCreate("cart", create))
	clk.advance(50 * time.Second)
	assert.Equal(t, 1, c.GetOrCreate("cart", create))
	clk.advance(50 * time.Second)
	assert.Equal(t, 1, c.GetOrCreate("cart", create))

	clk.advance(2 * time.Minute)
	assert.Equal(t, 2, c.GetOrCreate("cart", create))
}

func TestTouchRenewsTTL(t *testing.T) {
	c, clk := newTestCache(t, time.Minute)
	c.Set("cart", "x")

	clk.advance(50 * time.Second)
	v, ok := c.Touch("cart")
	require.True(t, ok)
	assert.Equal(t, "x", v)

	clk.advance(50 * time.Second)
	_, ok = c.GetValue("cart")
	assert.True(t, ok)

	clk.advance(2 * time.Minute)
	_, ok = c.Touch("cart")
	assert.False(t, ok)

	_, ok = c.Touch("missing")
	assert.False(t, ok)
}

func TestDelete(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)
	c.Set("product:1", 1)
	c.Set("product:10", 2)

	c.Delete("product:1")

	_, ok := c.GetValue("product:1")
	assert.False(t, ok)
	_, ok = c.GetValue("product:10")
	assert.True(t, ok)
}

func TestTypedGet(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)
	c.Set("n", 42)

	n, ok := Get[int](c, "n")
	assert.True(t, ok)
	assert.Equal(t, 42, n)

	_, ok = Get[string](c, "n")
	assert.False(t, ok)

	_, ok = Get[int](c, "missing")
	assert.False(t, ok)
}

func TestCloseIsIdempotent(t *testing.T) {
	c := New(time.Minute, time.Millisecond)
	c.Close()
	c.Close()
}
