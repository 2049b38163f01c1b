package catalog

import (
	"sort"
	"strings"

	"github.com/sademarquez/comunicaciones-storefront/internal/domain"
)

// SortOrder selects how filtered products are ordered.
type SortOrder string

const (
	SortNone      SortOrder = ""
	SortPriceAsc  SortOrder = "price_asc"
	SortPriceDesc SortOrder = "price_desc"
)

// Filter narrows and orders a catalog listing.
type Filter struct {
	Brand    string
	Category domain.Category
	Query    string
	Sort     SortOrder
}

// Apply returns the products matching the filter, in catalog order unless
// a price sort is requested. Price sorting uses the effective price, so
// offers rank by what the buyer actually pays.
func Apply(products []domain.Product, f Filter) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	term := strings.ToLower(strings.TrimSpace(f.Query))
	for _, p := range products {
		if f.Brand != "" && p.Brand != f.Brand {
			continue
		}
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if term != "" && !matchesQuery(p, term) {
			continue
		}
		out = append(out, p)
	}

	switch f.Sort {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].EffectivePrice().LessThan(out[j].EffectivePrice())
		})
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[j].EffectivePrice().LessThan(out[i].EffectivePrice())
		})
	}
	return out
}

// matchesQuery checks name, description, brand and category for a
// case-insensitive substring match.
func matchesQuery(p domain.Product, term string) bool {
	return strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.Description), term) ||
		strings.Contains(strings.ToLower(p.Brand), term) ||
		strings.Contains(strings.ToLower(string(p.Category)), term)
}

// Brands returns the configured brand list. When the configuration has
// none, brands are derived from the purchasable products instead, sorted
// by name, with logo paths following the store's icon convention.
func Brands(cfg domain.StoreConfig, products []domain.Product) []domain.Brand {
	if len(cfg.Brands) > 0 {
		out := make([]domain.Brand, len(cfg.Brands))
		copy(out, cfg.Brands)
		return out
	}

	seen := make(map[string]bool)
	var names []string
	for _, p := range products {
		if !p.Category.Purchasable() || p.Brand == "" || seen[p.Brand] {
			continue
		}
		seen[p.Brand] = true
		names = append(names, p.Brand)
	}
	sort.Strings(names)

	out := make([]domain.Brand, 0, len(names))
	for _, name := range names {
		slug := strings.ReplaceAll(strings.ToLower(name), " ", "-")
		out = append(out, domain.Brand{
			Name:    name,
			LogoURL: "images/icons/" + slug + "-logo.svg",
		})
	}
	return out
}
