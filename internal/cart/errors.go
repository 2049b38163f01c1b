package cart

import "errors"

var (
	// ErrCatalogNotLoaded gates Add until the initial data load completes.
	ErrCatalogNotLoaded = errors.New("catalog is not loaded yet")
	// ErrProductNotFound is returned when Add cannot resolve the product id.
	ErrProductNotFound = errors.New("product not found")
	// ErrNotPurchasable is returned for service and credit offerings, which
	// are sold through the consultation flow instead of the cart.
	ErrNotPurchasable = errors.New("product is not purchasable through the cart")
	// ErrEmptyCart blocks checkout on an empty cart.
	ErrEmptyCart = errors.New("cart is empty, nothing to checkout")
)
