package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sademarquez/comunicaciones-storefront/internal/cart"
	"github.com/sademarquez/comunicaciones-storefront/internal/catalog"
	"github.com/sademarquez/comunicaciones-storefront/internal/checkout"
	"github.com/sademarquez/comunicaciones-storefront/internal/domain"
	"github.com/sademarquez/comunicaciones-storefront/internal/state"
	"github.com/sademarquez/comunicaciones-storefront/internal/store"
)

func testRouter(t *testing.T) (http.Handler, *cart.Service) {
	t.Helper()

	st := state.New()
	require.NoError(t, st.SetCatalog([]domain.Product{
		{
			ID: "p1", Name: "Phone A", Brand: "Samsung", Category: domain.CategoryCelular,
			Price: decimal.NewFromInt(500000), ImageURL: "images/p1.jpg",
		},
		{
			ID: "a1", Name: "Case B", Brand: "Samsung", Category: domain.CategoryAccesorio,
			Price: decimal.NewFromInt(45000), OfferPrice: decimal.NewFromInt(30000), IsOnOffer: true,
		},
		{
			ID: "s1", Name: "Screen repair", Category: domain.CategoryServicio,
			Price: decimal.NewFromInt(180000),
		},
	}))
	st.SetConfig(domain.StoreConfig{ContactPhone: "573009998877"})

	engine := cart.NewService(st, store.NewMemoryStore(), nil)
	cartHandler := NewCartHandler(engine, 5*time.Second)
	catalogHandler := NewCatalogHandler(st, catalog.NewLoader(t.TempDir()))

	return NewRouter(cartHandler, catalogHandler, 5*time.Second), engine
}

func doJSON(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	request := httptest.NewRequest(method, path, reader)
	request.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

func decodeCart(t *testing.T, recorder *httptest.ResponseRecorder) CartResponse {
	t.Helper()
	var res CartResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))
	return res
}

func TestAddItem_Created(t *testing.T) {
	router, _ := testRouter(t)

	recorder := doJSON(t, router, http.MethodPost, "/api/v1/cart/items", AddItemRequestDTO{ProductID: "p1"})
	require.Equal(t, http.StatusCreated, recorder.Code)

	res := decodeCart(t, recorder)
	require.Len(t, res.Lines, 1)
	assert.Equal(t, "p1", res.Lines[0].ProductID)
	assert.Equal(t, 1, res.Lines[0].Quantity)
	assert.Equal(t, "500000", res.TotalPrice)
	assert.Equal(t, 1, res.TotalItems)
}

func TestAddItem_UnknownProduct(t *testing.T) {
	router, _ := testRouter(t)

	recorder := doJSON(t, router, http.MethodPost, "/api/v1/cart/items", AddItemRequestDTO{ProductID: "nope"})
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	var res ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))
	assert.Equal(t, "product_not_found", res.Code)
}

func TestAddItem_NonPurchasable(t *testing.T) {
	router, _ := testRouter(t)

	recorder := doJSON(t, router, http.MethodPost, "/api/v1/cart/items", AddItemRequestDTO{ProductID: "s1"})
	assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
}

func TestAddItem_InvalidBody(t *testing.T) {
	router, _ := testRouter(t)

	request := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", bytes.NewReader([]byte("{broken")))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestAddItem_MissingProductID(t *testing.T) {
	router, _ := testRouter(t)

	recorder := doJSON(t, router, http.MethodPost, "/api/v1/cart/items", AddItemRequestDTO{})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestGetCart_Empty(t *testing.T) {
	router, _ := testRouter(t)

	recorder := doJSON(t, router, http.MethodGet, "/api/v1/cart", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	res := decodeCart(t, recorder)
	assert.Empty(t, res.Lines)
	assert.Equal(t, 0, res.TotalItems)
	assert.Equal(t, "0", res.TotalPrice)
}

func TestUpdateQuantity_SetsAbsoluteValue(t *testing.T) {
	router, _ := testRouter(t)

	doJSON(t, router, http.MethodPost, "/api/v1/cart/items", AddItemRequestDTO{ProductID: "p1"})
	recorder := doJSON(t, router, http.MethodPut, "/api/v1/cart/items/p1", UpdateQuantityRequestDTO{Quantity: 5})
	require.Equal(t, http.StatusOK, recorder.Code)

	res := decodeCart(t, recorder)
	require.Len(t, res.Lines, 1)
	assert.Equal(t, 5, res.Lines[0].Quantity)
	assert.Equal(t, "2500000", res.TotalPrice)
}

func TestUpdateQuantity_ZeroRemovesLine(t *testing.T) {
	router, _ := testRouter(t)

	doJSON(t, router, http.MethodPost, "/api/v1/cart/items", AddItemRequestDTO{ProductID: "p1"})
	recorder := doJSON(t, router, http.MethodPut, "/api/v1/cart/items/p1", UpdateQuantityRequestDTO{Quantity: 0})
	require.Equal(t, http.StatusOK, recorder.Code)

	res := decodeCart(t, recorder)
	assert.Empty(t, res.Lines)
}

func TestRemoveItem_AbsentIsOK(t *testing.T) {
	router, _ := testRouter(t)

	recorder := doJSON(t, router, http.MethodDelete, "/api/v1/cart/items/never-added", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestCheckout_EmptyCartConflict(t *testing.T) {
	router, _ := testRouter(t)

	recorder := doJSON(t, router, http.MethodPost, "/api/v1/cart/checkout", nil)
	require.Equal(t, http.StatusConflict, recorder.Code)

	var res ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))
	assert.Equal(t, "empty_cart", res.Code)
}

func TestCheckout_ReturnsOrder(t *testing.T) {
	router, _ := testRouter(t)

	doJSON(t, router, http.MethodPost, "/api/v1/cart/items", AddItemRequestDTO{ProductID: "p1"})
	doJSON(t, router, http.MethodPost, "/api/v1/cart/items", AddItemRequestDTO{ProductID: "p1"})

	recorder := doJSON(t, router, http.MethodPost, "/api/v1/cart/checkout", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var order checkout.Order
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &order))
	assert.NotEmpty(t, order.Reference)
	assert.Equal(t, "573009998877", order.Phone)
	assert.Contains(t, order.Message, "Phone A x2")
	assert.Contains(t, order.Link, "wa.me/573009998877")
}

func TestHealth(t *testing.T) {
	router, _ := testRouter(t)

	recorder := doJSON(t, router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
}
