package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/singleflight"

	"github.com/sademarquez/comunicaciones-storefront/internal/domain"
)

const (
	productsFile = "products.json"
	configFile   = "config.json"
)

// Loader reads the catalog and store configuration from a data directory.
type Loader struct {
	dataDir string
	sfg     singleflight.Group // collapses concurrent reloads
}

func NewLoader(dataDir string) *Loader {
	return &Loader{dataDir: dataDir}
}

// Load reads and parses both data files. Either file failing fails the
// whole load; nothing partial is returned. Concurrent calls share a
// single read.
func (l *Loader) Load() ([]domain.Product, domain.StoreConfig, error) {
	type loaded struct {
		products []domain.Product
		config   domain.StoreConfig
	}

	v, err, _ := l.sfg.Do("load", func() (interface{}, error) {
		products, err := l.readProducts()
		if err != nil {
			return nil, err
		}
		cfg, err := l.readConfig()
		if err != nil {
			return nil, err
		}
		return loaded{products: products, config: cfg}, nil
	})
	if err != nil {
		return nil, domain.StoreConfig{}, err
	}

	res := v.(loaded)
	return res.products, res.config, nil
}

func (l *Loader) readProducts() ([]domain.Product, error) {
	data, err := os.ReadFile(filepath.Join(l.dataDir, productsFile))
	if err != nil {
		return nil, fmt.Errorf("read products: %w", err)
	}
	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("parse products: %w", err)
	}
	return products, nil
}

func (l *Loader) readConfig() (domain.StoreConfig, error) {
	data, err := os.ReadFile(filepath.Join(l.dataDir, configFile))
	if err != nil {
		return domain.StoreConfig{}, fmt.Errorf("read config: %w", err)
	}
	var cfg domain.StoreConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return domain.StoreConfig{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
