package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrInvalidQuantity is returned when a cart line would be created with a
// quantity below 1.
var ErrInvalidQuantity = errors.New("quantity must be at least 1")

// CartLine is one product's entry in the cart. Name, price and image are a
// snapshot taken when the product was added; later catalog changes do not
// alter lines already in the cart.
type CartLine struct {
	ProductID string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	ImageURL  string          `json:"imageUrl"`
	Quantity  int             `json:"quantity"`
}

// NewCartLine snapshots a product into a cart line.
func NewCartLine(p Product, quantity int) (CartLine, error) {
	if quantity < 1 {
		return CartLine{}, ErrInvalidQuantity
	}
	return CartLine{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.EffectivePrice(),
		ImageURL:  p.ImageURL,
		Quantity:  quantity,
	}, nil
}

// Subtotal is price times quantity.
func (l CartLine) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is an ordered sequence of cart lines, insertion order preserved.
// Invariants: at most one line per product id, every quantity >= 1.
type Cart struct {
	Lines []CartLine
}

// Find returns the position of the line for the given product id.
func (c Cart) Find(productID string) (int, bool) {
	for i, l := range c.Lines {
		if l.ProductID == productID {
			return i, true
		}
	}
	return 0, false
}

// TotalItems is the sum of all line quantities.
func (c Cart) TotalItems() int {
	total := 0
	for _, l := range c.Lines {
		total += l.Quantity
	}
	return total
}

// TotalPrice is the sum of all line subtotals.
func (c Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.Lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// IsEmpty reports whether the cart has no lines.
func (c Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// Normalize re-establishes the cart invariants on data that came from
// storage: lines with a quantity below 1 are dropped and lines sharing a
// product id are merged into the first occurrence.
func (c Cart) Normalize() Cart {
	out := Cart{}
	for _, l := range c.Lines {
		if l.Quantity < 1 {
			continue
		}
		if i, ok := out.Find(l.ProductID); ok {
			out.Lines[i].Quantity += l.Quantity
			continue
		}
		out.Lines = append(out.Lines, l)
	}
	return out
}
