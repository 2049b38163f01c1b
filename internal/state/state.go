package state

import (
	"fmt"
	"sync"

	"github.com/sademarquez/comunicaciones-storefront/internal/domain"
)

// State is the shared application state of one running storefront: the
// product catalog (read-only after load), the store configuration and the
// cart. It starts empty and is populated once by the startup load; the
// cart engine is the only component that replaces the cart.
//
// Handlers run concurrently, so every access goes through the mutex.
type State struct {
	mu       sync.RWMutex
	products []domain.Product
	index    map[string]int
	config   domain.StoreConfig
	loaded   bool
	cart     domain.Cart
}

func New() *State {
	return &State{index: make(map[string]int)}
}

// SetCatalog installs the loaded catalog. Product ids must be unique
// across the whole catalog.
func (s *State) SetCatalog(products []domain.Product) error {
	index := make(map[string]int, len(products))
	for i, p := range products {
		if p.ID == "" {
			return fmt.Errorf("product at position %d has no id", i)
		}
		if _, dup := index[p.ID]; dup {
			return fmt.Errorf("duplicate product id %q", p.ID)
		}
		index[p.ID] = i
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = products
	s.index = index
	s.loaded = true
	return nil
}

// SetConfig installs the store configuration.
func (s *State) SetConfig(cfg domain.StoreConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.config = cfg
}

// CatalogLoaded reports whether the initial catalog load has completed.
func (s *State) CatalogLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Product looks up a catalog entry by id.
func (s *State) Product(id string) (domain.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.index[id]
	if !ok {
		return domain.Product{}, false
	}
	return s.products[i], true
}

// Products returns a copy of the catalog in load order.
func (s *State) Products() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Config returns the store configuration.
func (s *State) Config() domain.StoreConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config
}

// Cart returns a copy of the current cart; callers may mutate the copy
// freely before handing it back through ReplaceCart.
func (s *State) Cart() domain.Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()
	lines := make([]domain.CartLine, len(s.cart.Lines))
	copy(lines, s.cart.Lines)
	return domain.Cart{Lines: lines}
}

// ReplaceCart swaps in a new cart. Reserved for the cart engine.
func (s *State) ReplaceCart(c domain.Cart) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = c
}
