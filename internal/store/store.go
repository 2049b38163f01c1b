package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sademarquez/comunicaciones-storefront/internal/domain"
)

// DefaultKey is the storage key used when a deployment does not configure
// its own namespace.
const DefaultKey = "celularmania_cart"

// Common errors returned by cart stores
var (
	ErrCartNotFound = errors.New("no cart stored")
	ErrCorrupted    = errors.New("stored cart is corrupted")
)

// CartStore persists the cart as a single key-value entry whose value is
// the JSON-serialized sequence of cart lines. Save must leave the previous
// value intact when it fails, so the engine can roll back cleanly.
type CartStore interface {
	Load(ctx context.Context) (domain.Cart, error)
	Save(ctx context.Context, cart domain.Cart) error
}

func marshalLines(cart domain.Cart) ([]byte, error) {
	lines := cart.Lines
	if lines == nil {
		lines = []domain.CartLine{}
	}
	return json.Marshal(lines)
}

func unmarshalLines(data []byte) (domain.Cart, error) {
	var lines []domain.CartLine
	if err := json.Unmarshal(data, &lines); err != nil {
		return domain.Cart{}, fmt.Errorf("%w: %v", ErrCorrupted, err)
	}
	return domain.Cart{Lines: lines}, nil
}
