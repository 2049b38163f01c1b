package domain

import "github.com/shopspring/decimal"

// Category classifies a catalog entry.
type Category string

const (
	CategoryCelular   Category = "Celular"
	CategoryAccesorio Category = "Accesorio"
	CategoryServicio  Category = "Servicio Técnico"
	CategoryCreditos  Category = "Créditos"
)

// Purchasable reports whether items of this category can be added to the
// cart. Technical services and credit plans go through the consultation
// flow instead.
func (c Category) Purchasable() bool {
	return c == CategoryCelular || c == CategoryAccesorio
}

// Product is a catalog entry. The catalog is immutable for the session
// once loaded; JSON field names match the data files.
type Product struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Brand        string          `json:"brand"`
	Category     Category        `json:"category"`
	Price        decimal.Decimal `json:"price"`
	OfferPrice   decimal.Decimal `json:"offerPrice"`
	IsOnOffer    bool            `json:"isOnOffer"`
	ImageURL     string          `json:"imageUrl"`
	WhatsappLink string          `json:"whatsapp_link,omitempty"`
	IsNew        bool            `json:"isNew,omitempty"`
	IsBookable   bool            `json:"isBookable,omitempty"`
}

// EffectivePrice is the price a buyer pays right now: the offer price when
// the product is on offer and one is set, the regular price otherwise.
func (p Product) EffectivePrice() decimal.Decimal {
	if p.IsOnOffer && p.OfferPrice.IsPositive() {
		return p.OfferPrice
	}
	return p.Price
}
