// Package catalog holds the ordered, read-only product set that paginators slice.
// A Catalog is built once and never mutated, so it is safe for concurrent readers.
package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/btree"
	"github.com/maxviazov/product-pagination-service/internal/model"
)

// ErrDuplicateID is returned when two products share an identifier.
var ErrDuplicateID = errors.New("duplicate product id")

// ErrNotBuilt is returned by Ping on a nil catalog.
var ErrNotBuilt = errors.New("catalog not built")

const indexDegree = 16

// indexEntry maps a product id to its position in the ordered sequence.
type indexEntry struct {
	id  int64
	pos int
}

func lessEntry(a, b indexEntry) bool { return a.id < b.id }

// Catalog is an immutable ordered sequence of products with an id index.
type Catalog struct {
	products []model.Product
	index    *btree.BTreeG[indexEntry]
}

// New copies products into a Catalog and indexes them by id.
// The input order is preserved; ids must be unique but need not be sorted.
func New(products []model.Product) (*Catalog, error) {
	items := make([]model.Product, len(products))
	copy(items, products)

	idx := btree.NewG(indexDegree, lessEntry)
	for pos, p := range items {
		if _, replaced := idx.ReplaceOrInsert(indexEntry{id: p.ID, pos: pos}); replaced {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, p.ID)
		}
	}
	return &Catalog{products: items, index: idx}, nil
}

// Len returns the number of products.
func (c *Catalog) Len() int { return len(c.products) }

// At returns the product at pos. It panics when pos is out of range, like a slice.
func (c *Catalog) At(pos int) model.Product { return c.products[pos] }

// Slice returns a copy of products in [start, end) clipped to the catalog bounds.
// The result is never nil.
func (c *Catalog) Slice(start, end int) []model.Product {
	n := len(c.products)
	start = clamp(start, 0, n)
	end = clamp(end, start, n)
	out := make([]model.Product, end-start)
	copy(out, c.products[start:end])
	return out
}

// Position resolves id to its position in the catalog.
func (c *Catalog) Position(id int64) (int, bool) {
	e, ok := c.index.Get(indexEntry{id: id})
	if !ok {
		return 0, false
	}
	return e.pos, true
}

// Ping reports readiness. The catalog lives in memory, so only a missing one fails.
func (c *Catalog) Ping(_ context.Context) error {
	if c == nil {
		return ErrNotBuilt
	}
	return nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
