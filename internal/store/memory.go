package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/sademarquez/comunicaciones-storefront/internal/domain"
)

// MemoryStore holds the serialized cart in memory. It backs tests and
// ephemeral deployments that do not need the cart to survive a restart.
type MemoryStore struct {
	mu      sync.RWMutex
	payload []byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Load(_ context.Context) (domain.Cart, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.payload == nil {
		return domain.Cart{}, ErrCartNotFound
	}
	return unmarshalLines(m.payload)
}

func (m *MemoryStore) Save(_ context.Context, cart domain.Cart) error {
	data, err := marshalLines(cart)
	if err != nil {
		return fmt.Errorf("marshal cart failed: %w", err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.payload = data
	return nil
}

// SetPayload seeds a raw stored value (used for initialization and for
// exercising corruption handling).
func (m *MemoryStore) SetPayload(payload []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.payload = payload
}
