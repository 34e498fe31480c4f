package appstate

import (
	"errors"
	"fmt"
	"sync"
)

// MaxCartCount is the most items a single cart may hold
const MaxCartCount = 999

// ErrCartLimit is returned when an add would take a cart past MaxCartCount
var ErrCartLimit = errors.New("cart limit exceeded")

// Container owns application state shared across requests. It is the single
// writer of each client's cart count.
type Container struct {
	mu    sync.RWMutex
	carts map[string]int
}

// NewContainer creates an empty Container
func NewContainer() *Container {
	return &Container{carts: make(map[string]int)}
}

// CartCount returns the number of items in a client's cart
func (c *Container) CartCount(sessionID string) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.carts[sessionID]
}

// AddToCart adds quantity items and returns the new count
func (c *Container) AddToCart(sessionID string, quantity int) (int, error) {
	if sessionID == "" {
		return 0, fmt.Errorf("session id cannot be empty")
	}
	if quantity < 1 {
		return 0, fmt.Errorf("quantity must be at least 1")
	}
	if quantity > MaxCartCount {
		return 0, fmt.Errorf("%w: quantity %d is over %d", ErrCartLimit, quantity, MaxCartCount)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if current := c.carts[sessionID]; current+quantity > MaxCartCount {
		return current, fmt.Errorf("%w: cart holds %d of %d", ErrCartLimit, current, MaxCartCount)
	}
	c.carts[sessionID] += quantity
	return c.carts[sessionID], nil
}

// ClearCart empties a client's cart
func (c *Container) ClearCart(sessionID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.carts, sessionID)
}
