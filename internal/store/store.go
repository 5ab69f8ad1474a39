// Package store persists the catalog's three JSON documents: products,
// admin credentials and site settings. Each document is the full
// authoritative snapshot and is rewritten wholesale on every mutation.
package store

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"

	"backend/internal/models"
	"backend/internal/slug"
)

type Store struct {
	productsPath string
	adminPath    string
	settingsPath string
}

func New(dataDir string) *Store {
	return &Store{
		productsPath: filepath.Join(dataDir, "products.json"),
		adminPath:    filepath.Join(dataDir, "admin.json"),
		settingsPath: filepath.Join(dataDir, "settings.json"),
	}
}

// Init creates the data directory, seeds each missing document with its
// default value and backfills slugs on product records written before the
// slug field existed.
func (s *Store) Init() error {
	if err := os.MkdirAll(filepath.Dir(s.productsPath), 0o755); err != nil {
		return err
	}

	if _, err := os.Stat(s.productsPath); os.IsNotExist(err) {
		if err := s.WriteProducts(seedProducts()); err != nil {
			return err
		}
	}
	if _, err := os.Stat(s.adminPath); os.IsNotExist(err) {
		if err := writeJSON(s.adminPath, seedAdmin()); err != nil {
			return err
		}
	}
	if _, err := os.Stat(s.settingsPath); os.IsNotExist(err) {
		if err := writeJSON(s.settingsPath, seedSettings()); err != nil {
			return err
		}
	}

	return s.backfillSlugs()
}

func (s *Store) backfillSlugs() error {
	products := s.ReadProducts()

	changed := false
	for i := range products {
		if products[i].Slug == "" && products[i].Name != "" {
			products[i].Slug = slug.Make(products[i].Name)
			changed = true
		}
	}

	if !changed {
		return nil
	}

	log.Printf("[STORE] backfilled slugs for %d products", len(products))
	return s.WriteProducts(products)
}

// ReadProducts loads the product collection in store order. A missing file
// or a parse failure yields an empty collection rather than an error.
func (s *Store) ReadProducts() []models.Product {
	products := make([]models.Product, 0)
	if err := readJSON(s.productsPath, &products); err != nil {
		log.Printf("[STORE] read products: %v", err)
		return []models.Product{}
	}
	return products
}

func (s *Store) WriteProducts(products []models.Product) error {
	return writeJSON(s.productsPath, products)
}

// ReadSettings loads the settings document as raw top-level entries,
// preserving keys the service does not know about. Read failures yield an
// empty document.
func (s *Store) ReadSettings() map[string]json.RawMessage {
	doc := map[string]json.RawMessage{}
	if err := readJSON(s.settingsPath, &doc); err != nil {
		log.Printf("[STORE] read settings: %v", err)
		return map[string]json.RawMessage{}
	}
	return doc
}

func (s *Store) WriteSettings(doc map[string]json.RawMessage) error {
	return writeJSON(s.settingsPath, doc)
}

// ReadAdmin surfaces its error: a login must fail closed when the
// credentials document cannot be read, not fall back to empty credentials.
func (s *Store) ReadAdmin() (models.AdminCredentials, error) {
	var creds models.AdminCredentials
	if err := readJSON(s.adminPath, &creds); err != nil {
		return models.AdminCredentials{}, err
	}
	return creds, nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
