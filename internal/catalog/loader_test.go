package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDataDir(t *testing.T, products, config string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "products.json"), []byte(products), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte(config), 0o644))
	return dir
}

func TestLoad_Success(t *testing.T) {
	dir := writeDataDir(t, `[
		{"id":"p1","name":"Phone A","brand":"Samsung","category":"Celular","price":500000,"imageUrl":"images/p1.jpg"},
		{"id":"p2","name":"Case","brand":"Samsung","category":"Accesorio","price":45000,"offerPrice":30000,"isOnOffer":true,"imageUrl":"images/p2.jpg"}
	]`, `{
		"contactPhone":"573001112233",
		"banners":[{"imageUrl":"images/b1.jpg","title":"Promo"}],
		"brands":[{"name":"Samsung","logoUrl":"images/icons/samsung-logo.svg"}]
	}`)

	sut := NewLoader(dir)
	products, cfg, err := sut.Load()
	require.NoError(t, err)

	require.Len(t, products, 2)
	assert.Equal(t, "p1", products[0].ID)
	assert.Equal(t, "Phone A", products[0].Name)
	assert.True(t, products[1].IsOnOffer)
	assert.Equal(t, "30000", products[1].EffectivePrice().String())

	assert.Equal(t, "573001112233", cfg.ContactPhone)
	require.Len(t, cfg.Banners, 1)
	require.Len(t, cfg.Brands, 1)
}

func TestLoad_MissingProductsFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte(`{}`), 0o644))

	sut := NewLoader(dir)
	_, _, err := sut.Load()
	require.ErrorContains(t, err, "read products")
}

func TestLoad_UnparsableProducts(t *testing.T) {
	dir := writeDataDir(t, `{not an array`, `{}`)

	sut := NewLoader(dir)
	_, _, err := sut.Load()
	require.ErrorContains(t, err, "parse products")
}

func TestLoad_UnparsableConfig(t *testing.T) {
	dir := writeDataDir(t, `[]`, `not json`)

	sut := NewLoader(dir)
	_, _, err := sut.Load()
	require.ErrorContains(t, err, "parse config")
}
