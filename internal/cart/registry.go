package cart

import "sync"

// Registry maps login sessions to their carts.
type Registry struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{carts: make(map[string]*Cart)}
}

// Get returns the cart for session, creating it on first use.
func (r *Registry) Get(session string) *Cart {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.carts[session]
	if !ok {
		c = &Cart{}
		r.carts[session] = c
	}
	return c
}

// Drop discards the cart for session.
func (r *Registry) Drop(session string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, session)
}

// Len returns the number of open carts.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.carts)
}
