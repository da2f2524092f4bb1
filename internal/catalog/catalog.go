// Package catalog holds the read-only product reference data for the site.
package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Status reports whether a product line is currently offered or planned.
type Status string

const (
	StatusPresent Status = "present"
	StatusFuture  Status = "future"
)

// Product is immutable reference data, loaded once per session.
type Product struct {
	ID      string `yaml:"id" json:"id"`
	Name    string `yaml:"name" json:"name"`
	Status  Status `yaml:"status" json:"status"`
	Summary string `yaml:"summary" json:"summary"`
}

// Catalog is the immutable set of products for the lifetime of the process.
type Catalog struct {
	products []Product
	byID     map[string]Product
}

type catalogFile struct {
	Products []Product `yaml:"products"`
}

// Load reads the catalog from a YAML file and verifies its invariants.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	return New(file.Products)
}

// New builds a catalog from a product list, enforcing unique ids and known statuses.
func New(products []Product) (*Catalog, error) {
	byID := make(map[string]Product, len(products))
	for _, p := range products {
		if p.ID == "" {
			return nil, fmt.Errorf("product with empty id")
		}
		if p.Name == "" {
			return nil, fmt.Errorf("product %q has no display name", p.ID)
		}
		if p.Status != StatusPresent && p.Status != StatusFuture {
			return nil, fmt.Errorf("product %q has unknown status %q", p.ID, p.Status)
		}
		if _, exists := byID[p.ID]; exists {
			return nil, fmt.Errorf("duplicate product id %q", p.ID)
		}
		byID[p.ID] = p
	}

	return &Catalog{
		products: append([]Product(nil), products...),
		byID:     byID,
	}, nil
}

// Get returns the product with the given id.
func (c *Catalog) Get(id string) (Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Products returns a copy of the product list in file order.
func (c *Catalog) Products() []Product {
	return append([]Product(nil), c.products...)
}

// Len returns the number of products in the catalog.
func (c *Catalog) Len() int {
	return len(c.products)
}
