// Package store holds the client-side application state: the catalog, the
// basket, and the in-progress order draft. Stores are plain constructed
// instances wired together through an event bus; every mutation publishes the
// resulting state so views stay decoupled from the mutation sites.
package store

import (
	"weblarek/internal/domain"
	"weblarek/internal/events"
)

// Catalog holds the fetched product list. The list is replaced wholesale on
// every fetch; products are never mutated in place.
type Catalog struct {
	bus      *events.Bus
	products []domain.Product
}

func NewCatalog(bus *events.Bus) *Catalog {
	return &Catalog{bus: bus}
}

// SetProducts replaces the whole catalog and publishes products:updated.
func (c *Catalog) SetProducts(products []domain.Product) {
	c.products = make([]domain.Product, len(products))
	copy(c.products, products)
	c.bus.Publish(events.ProductsUpdated{Products: c.Products()})
}

// ProductByID looks a product up by identity. A miss is an expected outcome
// (a selected card may reference a product dropped by a refresh), so it is
// reported through the bool, never an error.
func (c *Catalog) ProductByID(id string) (domain.Product, bool) {
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// Products returns a copy of the current catalog.
func (c *Catalog) Products() []domain.Product {
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}
