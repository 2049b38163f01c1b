package cart

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/sademarquez/comunicaciones-storefront/internal/checkout"
	"github.com/sademarquez/comunicaciones-storefront/internal/domain"
	"github.com/sademarquez/comunicaciones-storefront/internal/state"
	"github.com/sademarquez/comunicaciones-storefront/internal/store"
)

// Service is the cart engine: the only writer of the cart field in the
// application state, and the component that keeps it in lockstep with
// durable storage. Every mutation persists before it becomes visible in
// memory, so a restart never observes a half-applied operation.
type Service struct {
	mu     sync.Mutex // serializes mutations, single logical writer
	state  *state.State
	store  store.CartStore
	notify Notifier
}

func NewService(st *state.State, cs store.CartStore, n Notifier) *Service {
	if n == nil {
		n = NopNotifier{}
	}
	return &Service{state: st, store: cs, notify: n}
}

// Restore loads the persisted cart into the application state. A missing,
// unreadable or corrupted entry degrades to an empty cart; restore never
// fails the startup sequence.
func (s *Service) Restore(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	loaded, err := s.store.Load(ctx)
	switch {
	case err == nil:
	case errors.Is(err, store.ErrCartNotFound):
		loaded = domain.Cart{}
	default:
		log.Printf("stored cart unavailable, starting empty: %v", err)
		loaded = domain.Cart{}
	}

	restored := loaded.Normalize()
	s.state.ReplaceCart(restored)
	s.notify.CartChanged(restored.TotalItems())
}

// Add puts one unit of the product into the cart, merging with an
// existing line for the same product. A new line snapshots the product's
// name, effective price and image at this instant.
func (s *Service) Add(ctx context.Context, productID string) (domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.CatalogLoaded() {
		s.notify.Toast("El catálogo aún no está disponible. Intenta de nuevo.")
		return s.state.Cart(), ErrCatalogNotLoaded
	}

	product, ok := s.state.Product(productID)
	if !ok {
		s.notify.Toast("Producto no encontrado.")
		return s.state.Cart(), fmt.Errorf("%w: %s", ErrProductNotFound, productID)
	}

	if !product.Category.Purchasable() {
		s.notify.Toast(fmt.Sprintf("%s se gestiona por consulta directa.", product.Name))
		return s.state.Cart(), fmt.Errorf("%w: %s", ErrNotPurchasable, productID)
	}

	next := s.state.Cart()
	if i, exists := next.Find(productID); exists {
		next.Lines[i].Quantity++
	} else {
		line, err := domain.NewCartLine(product, 1)
		if err != nil {
			return s.state.Cart(), err
		}
		next.Lines = append(next.Lines, line)
	}

	if err := s.commit(ctx, next); err != nil {
		return s.state.Cart(), err
	}
	s.notify.Toast(fmt.Sprintf("%s añadido al carrito.", product.Name))
	return next, nil
}

// Remove deletes the line for the given product id. An absent id is an
// idempotent no-op, not an error.
func (s *Service) Remove(ctx context.Context, productID string) (domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.removeLocked(ctx, productID)
}

func (s *Service) removeLocked(ctx context.Context, productID string) (domain.Cart, error) {
	current := s.state.Cart()
	i, ok := current.Find(productID)
	if !ok {
		return current, nil
	}

	next := domain.Cart{Lines: append(current.Lines[:i], current.Lines[i+1:]...)}
	if err := s.commit(ctx, next); err != nil {
		return s.state.Cart(), err
	}
	s.notify.Toast("Producto eliminado del carrito.")
	return next, nil
}

// SetQuantity sets a line's quantity to an absolute value. An absent id is
// a no-op; a quantity of zero or less removes the line.
func (s *Service) SetQuantity(ctx context.Context, productID string, quantity int) (domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		return s.removeLocked(ctx, productID)
	}

	next := s.state.Cart()
	i, ok := next.Find(productID)
	if !ok {
		return next, nil
	}

	next.Lines[i].Quantity = quantity
	if err := s.commit(ctx, next); err != nil {
		return s.state.Cart(), err
	}
	return next, nil
}

// Cart returns a copy of the current cart.
func (s *Service) Cart() domain.Cart {
	return s.state.Cart()
}

// TotalItemCount is the sum of all line quantities.
func (s *Service) TotalItemCount() int {
	return s.state.Cart().TotalItems()
}

// TotalPrice is the sum of price times quantity over all lines.
func (s *Service) TotalPrice() decimal.Decimal {
	return s.state.Cart().TotalPrice()
}

// Checkout composes the WhatsApp order for the current cart using the
// configured contact phone. The cart itself is left untouched; the order
// is sealed when the customer sends the message.
func (s *Service) Checkout() (checkout.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.state.Cart()
	if current.IsEmpty() {
		return checkout.Order{}, ErrEmptyCart
	}
	return checkout.NewOrder(current, s.state.Config().ContactPhone), nil
}

// commit persists the cart and only then makes it visible in memory. A
// failed write leaves both copies on the previous value.
func (s *Service) commit(ctx context.Context, next domain.Cart) error {
	if err := s.store.Save(ctx, next); err != nil {
		return fmt.Errorf("persist cart: %w", err)
	}
	s.state.ReplaceCart(next)
	s.notify.CartChanged(next.TotalItems())
	return nil
}
