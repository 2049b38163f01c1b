package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sademarquez/comunicaciones-storefront/internal/catalog"
	"github.com/sademarquez/comunicaciones-storefront/internal/domain"
	"github.com/sademarquez/comunicaciones-storefront/internal/state"
)

type CatalogHandler struct {
	state  *state.State
	loader *catalog.Loader
}

func NewCatalogHandler(st *state.State, loader *catalog.Loader) *CatalogHandler {
	return &CatalogHandler{
		state:  st,
		loader: loader,
	}
}

type ProductResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	Brand          string `json:"brand"`
	Category       string `json:"category"`
	Price          string `json:"price"`
	OfferPrice     string `json:"offer_price,omitempty"`
	IsOnOffer      bool   `json:"is_on_offer,omitempty"`
	EffectivePrice string `json:"effective_price"`
	ImageURL       string `json:"image_url"`
	WhatsappLink   string `json:"whatsapp_link,omitempty"`
	IsNew          bool   `json:"is_new,omitempty"`
	IsBookable     bool   `json:"is_bookable,omitempty"`
}

type ProductsResponse struct {
	Total    int               `json:"total"`
	Products []ProductResponse `json:"products"`
}

func productResponse(p domain.Product) ProductResponse {
	res := ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		Brand:          p.Brand,
		Category:       string(p.Category),
		Price:          p.Price.String(),
		IsOnOffer:      p.IsOnOffer,
		EffectivePrice: p.EffectivePrice().String(),
		ImageURL:       p.ImageURL,
		WhatsappLink:   p.WhatsappLink,
		IsNew:          p.IsNew,
		IsBookable:     p.IsBookable,
	}
	if p.IsOnOffer && p.OfferPrice.IsPositive() {
		res.OfferPrice = p.OfferPrice.String()
	}
	return res
}

func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := catalog.Filter{
		Brand:    r.URL.Query().Get("brand"),
		Category: domain.Category(r.URL.Query().Get("category")),
		Query:    r.URL.Query().Get("q"),
	}

	switch r.URL.Query().Get("sort") {
	case "price_asc":
		filter.Sort = catalog.SortPriceAsc
	case "price_desc":
		filter.Sort = catalog.SortPriceDesc
	}

	// Pagination, clamped to sane bounds
	offset := 0
	limit := 20
	if oStr := r.URL.Query().Get("offset"); oStr != "" {
		if o, err := strconv.Atoi(oStr); err == nil && o >= 0 {
			offset = o
		}
	}
	if lStr := r.URL.Query().Get("limit"); lStr != "" {
		if l, err := strconv.Atoi(lStr); err == nil {
			if l < 1 {
				limit = 1
			} else if l > 100 {
				limit = 100
			} else {
				limit = l
			}
		}
	}

	filtered := catalog.Apply(h.state.Products(), filter)
	total := len(filtered)

	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}
	page := filtered[offset:end]

	products := make([]ProductResponse, len(page))
	for i, p := range page {
		products[i] = productResponse(p)
	}

	respondJSON(w, http.StatusOK, ProductsResponse{
		Total:    total,
		Products: products,
	})
}

func (h *CatalogHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	product, ok := h.state.Product(id)
	if !ok {
		respondError(w, http.StatusNotFound, "product_not_found", "product not found")
		return
	}
	respondJSON(w, http.StatusOK, productResponse(product))
}

func (h *CatalogHandler) Brands(w http.ResponseWriter, r *http.Request) {
	brands := catalog.Brands(h.state.Config(), h.state.Products())
	respondJSON(w, http.StatusOK, map[string][]domain.Brand{"brands": brands})
}

func (h *CatalogHandler) Banners(w http.ResponseWriter, r *http.Request) {
	banners := h.state.Config().Banners
	if banners == nil {
		banners = []domain.Banner{}
	}
	respondJSON(w, http.StatusOK, map[string][]domain.Banner{"banners": banners})
}

// Reload re-reads the data files and swaps the catalog and configuration
// in place. The cart is untouched: existing lines keep their snapshots.
func (h *CatalogHandler) Reload(w http.ResponseWriter, r *http.Request) {
	products, cfg, err := h.loader.Load()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "reload_failed", err.Error())
		return
	}
	if err := h.state.SetCatalog(products); err != nil {
		respondError(w, http.StatusInternalServerError, "reload_failed", err.Error())
		return
	}
	h.state.SetConfig(cfg)

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":   "ok",
		"products": len(products),
	})
}
