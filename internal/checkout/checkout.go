package checkout

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sademarquez/comunicaciones-storefront/internal/domain"
)

// DefaultPhone receives orders when the store configuration does not
// provide a contact number.
const DefaultPhone = "573001112233"

// Order is the composed WhatsApp handoff for the current cart.
type Order struct {
	Reference string          `json:"reference"`
	Phone     string          `json:"phone"`
	Message   string          `json:"message"`
	Link      string          `json:"link"`
	Total     decimal.Decimal `json:"total"`
}

// NewOrder builds the outbound order for the given cart and contact phone.
func NewOrder(cart domain.Cart, phone string) Order {
	if phone == "" {
		phone = DefaultPhone
	}
	message := Message(cart)
	return Order{
		Reference: uuid.New().String(),
		Phone:     phone,
		Message:   message,
		Link:      Link(phone, message),
		Total:     cart.TotalPrice(),
	}
}

// Message renders the order summary: a greeting, one line per cart entry
// with its subtotal, the grand total and a closing prompt.
func Message(cart domain.Cart) string {
	var b strings.Builder
	b.WriteString("¡Hola! Quiero hacer el siguiente pedido:\n")
	for _, l := range cart.Lines {
		fmt.Fprintf(&b, "- %s x%d (%s)\n", l.Name, l.Quantity, FormatPesos(l.Subtotal()))
	}
	fmt.Fprintf(&b, "Total: %s\n", FormatPesos(cart.TotalPrice()))
	b.WriteString("¿Me confirman disponibilidad y medios de pago?")
	return b.String()
}

// Link builds the wa.me URL carrying the message as an encoded text
// parameter.
func Link(phone, message string) string {
	q := url.Values{}
	q.Set("text", message)
	u := url.URL{
		Scheme:   "https",
		Host:     "wa.me",
		Path:     "/" + phone,
		RawQuery: q.Encode(),
	}
	return u.String()
}

// FormatPesos renders an amount as Colombian pesos: no decimals, dot
// thousands separators.
func FormatPesos(v decimal.Decimal) string {
	digits := v.Round(0).BigInt().String()
	var b strings.Builder
	b.WriteByte('$')
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 && r != '-' {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	return b.String()
}
