package store

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sademarquez/comunicaciones-storefront/internal/domain"
)

func testCart() domain.Cart {
	return domain.Cart{Lines: []domain.CartLine{
		{ProductID: "p1", Name: "Phone A", Price: decimal.NewFromInt(500000), ImageURL: "images/p1.jpg", Quantity: 2},
		{ProductID: "p2", Name: "Case B", Price: decimal.NewFromInt(30000), ImageURL: "images/p2.jpg", Quantity: 1},
	}}
}

func TestMemoryStore_LoadWithoutSave(t *testing.T) {
	sut := NewMemoryStore()

	_, err := sut.Load(context.Background())
	assert.ErrorIs(t, err, ErrCartNotFound)
}

func TestMemoryStore_RoundTrip(t *testing.T) {
	sut := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, sut.Save(ctx, testCart()))

	got, err := sut.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got.Lines, 2)
	assert.Equal(t, "p1", got.Lines[0].ProductID)
	assert.Equal(t, "Phone A", got.Lines[0].Name)
	assert.True(t, got.Lines[0].Price.Equal(decimal.NewFromInt(500000)))
	assert.Equal(t, 2, got.Lines[0].Quantity)
	assert.Equal(t, "p2", got.Lines[1].ProductID)
}

func TestMemoryStore_SaveEmptyCart(t *testing.T) {
	sut := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, sut.Save(ctx, testCart()))
	require.NoError(t, sut.Save(ctx, domain.Cart{}))

	got, err := sut.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got.Lines)
}

func TestMemoryStore_CorruptedPayload(t *testing.T) {
	sut := NewMemoryStore()
	sut.SetPayload([]byte(`[{"id":`))

	_, err := sut.Load(context.Background())
	assert.ErrorIs(t, err, ErrCorrupted)
}
