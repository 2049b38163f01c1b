package http

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sademarquez/comunicaciones-storefront/internal/cart"
	"github.com/sademarquez/comunicaciones-storefront/internal/domain"
)

type CartHandler struct {
	engine  *cart.Service
	timeout time.Duration
}

func NewCartHandler(engine *cart.Service, timeout time.Duration) *CartHandler {
	return &CartHandler{
		engine:  engine,
		timeout: timeout,
	}
}

type AddItemRequestDTO struct {
	ProductID string `json:"product_id"`
}

type UpdateQuantityRequestDTO struct {
	Quantity int `json:"quantity"`
}

type CartLineResponse struct {
	ProductID string `json:"id"`
	Name      string `json:"name"`
	Price     string `json:"price"`
	ImageURL  string `json:"image_url"`
	Quantity  int    `json:"quantity"`
	Subtotal  string `json:"subtotal"`
}

type CartResponse struct {
	Lines      []CartLineResponse `json:"lines"`
	TotalItems int                `json:"total_items"`
	TotalPrice string             `json:"total_price"`
}

func cartResponse(c domain.Cart) CartResponse {
	lines := make([]CartLineResponse, len(c.Lines))
	for i, l := range c.Lines {
		lines[i] = CartLineResponse{
			ProductID: l.ProductID,
			Name:      l.Name,
			Price:     l.Price.String(),
			ImageURL:  l.ImageURL,
			Quantity:  l.Quantity,
			Subtotal:  l.Subtotal().String(),
		}
	}
	return CartResponse{
		Lines:      lines,
		TotalItems: c.TotalItems(),
		TotalPrice: c.TotalPrice().String(),
	}
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, cartResponse(h.engine.Cart()))
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.ProductID == "" {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id is required")
		return
	}

	updated, err := h.engine.Add(ctx, req.ProductID)
	if err != nil {
		handleCartError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, cartResponse(updated))
}

func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	productID := chi.URLParam(r, "product_id")
	if productID == "" {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id is required")
		return
	}

	var req UpdateQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Quantity > 99 {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be at most 99")
		return
	}

	updated, err := h.engine.SetQuantity(ctx, productID, req.Quantity)
	if err != nil {
		handleCartError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, cartResponse(updated))
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	productID := chi.URLParam(r, "product_id")
	if productID == "" {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id is required")
		return
	}

	updated, err := h.engine.Remove(ctx, productID)
	if err != nil {
		handleCartError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, cartResponse(updated))
}

func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	order, err := h.engine.Checkout()
	if err != nil {
		handleCartError(w, err)
		return
	}

	log.Printf("checkout %s composed for %s (request %s)", order.Reference, order.Phone, getRequestID(r.Context()))
	respondJSON(w, http.StatusOK, order)
}

// handleCartError maps cart engine errors to HTTP status codes.
func handleCartError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, cart.ErrCatalogNotLoaded):
		respondError(w, http.StatusServiceUnavailable, "catalog_not_loaded", err.Error())
	case errors.Is(err, cart.ErrProductNotFound):
		respondError(w, http.StatusNotFound, "product_not_found", err.Error())
	case errors.Is(err, cart.ErrNotPurchasable):
		respondError(w, http.StatusUnprocessableEntity, "not_purchasable", err.Error())
	case errors.Is(err, cart.ErrEmptyCart):
		respondError(w, http.StatusConflict, "empty_cart", err.Error())
	default:
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
