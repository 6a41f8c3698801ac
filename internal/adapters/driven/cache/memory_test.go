package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_GetSet(t *testing.T) {
	c := NewMemory(0)
	ctx := context.Background()

	_, ok, err := c.Get(ctx, "counts", "k")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "counts", "k", []byte("v")))

	v, ok, err := c.Get(ctx, "counts", "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("v"), v)
}

func TestMemory_GroupsAreSeparate(t *testing.T) {
	c := NewMemory(0)
	ctx := context.Background()
	require.NoError(t, c.Set(ctx, "a", "k", []byte("1")))

	_, ok, err := c.Get(ctx, "b", "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemory_ReturnsCopies(t *testing.T) {
	c := NewMemory(0)
	ctx := context.Background()
	value := []byte("abc")
	require.NoError(t, c.Set(ctx, "g", "k", value))
	value[0] = 'z'

	got, _, _ := c.Get(ctx, "g", "k")
	assert.Equal(t, []byte("abc"), got)
}

func TestMemory_Expiry(t *testing.T) {
	now := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewMemory(time.Minute)
	c.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "g", "k", []byte("v")))

	now = now.Add(30 * time.Second)
	_, ok, _ := c.Get(ctx, "g", "k")
	assert.True(t, ok)

	now = now.Add(time.Minute)
	_, ok, _ = c.Get(ctx, "g", "k")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestNop(t *testing.T) {
	ctx := context.Background()
	require.NoError(t, Nop{}.Set(ctx, "g", "k", []byte("v")))
	_, ok, err := Nop{}.Get(ctx, "g", "k")
	require.NoError(t, err)
	assert.False(t, ok)
}
