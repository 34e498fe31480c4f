package appstate

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCart(t *testing.T) {
	c := NewContainer()
	assert.Zero(t, c.CartCount("a"))

	n, err := c.AddToCart("a", 2)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = c.AddToCart("a", 1)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Zero(t, c.CartCount("b"))

	c.ClearCart("a")
	assert.Zero(t, c.CartCount("a"))

	_, err = c.AddToCart("a", 0)
	assert.Error(t, err)
	_, err = c.AddToCart("", 1)
	assert.Error(t, err)
}

func TestCartLimit(t *testing.T) {
	c := NewContainer()

	_, err := c.AddToCart("a", int(^uint(0)>>1))
	assert.ErrorIs(t, err, ErrCartLimit)
	assert.Zero(t, c.CartCount("a"))

	n, err := c.AddToCart("a", MaxCartCount)
	require.NoError(t, err)
	assert.Equal(t, MaxCartCount, n)

	n, err = c.AddToCart("a", 1)
	assert.ErrorIs(t, err, ErrCartLimit)
	assert.Equal(t, MaxCartCount, n)
	assert.Equal(t, MaxCartCount, c.CartCount("a"))
}

func TestCartConcurrentWrites(t *testing.T) {
	c := NewContainer()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = c.AddToCart("shared", 1)
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, c.CartCount("shared"))
}
