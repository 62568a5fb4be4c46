package models

import (
	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
)

type Category string

const (
	CategorySandwiches Category = "sandwiches"
	CategorySushi      Category = "sushi"
	CategoryDrinks     Category = "drinks"
	CategorySpecials   Category = "specials"
)

func (c Category) IsValid() bool {
	return c == CategorySandwiches || c == CategorySushi || c == CategoryDrinks || c == CategorySpecials
}

// Categories lists the fixed category keys in display order. AllProducts
// concatenates in this order.
var Categories = []Category{CategorySandwiches, CategorySushi, CategoryDrinks, CategorySpecials}

// Catalog groups the menu by category. Built once at startup, read-only
// afterwards; per-category order is the insertion order of the menu data and
// drives display order.
type Catalog struct {
	byCategory map[Category][]*Product
	byID       map[uuid.UUID]*Product
}

// BuildCatalog validates the category keys and indexes the products. All bad
// keys are reported together rather than just the first.
func BuildCatalog(byCategory map[Category][]*Product) (*Catalog, error) {
	var errs *multierror.Error
	for key := range byCategory {
		if !key.IsValid() {
			errs = multierror.Append(errs, &InvalidCategoryError{Key: string(key)})
		}
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}

	c := &Catalog{
		byCategory: make(map[Category][]*Product, len(byCategory)),
		byID:       make(map[uuid.UUID]*Product),
	}
	for key, products := range byCategory {
		c.byCategory[key] = append([]*Product(nil), products...)
		for _, p := range products {
			c.byID[p.ID] = p
		}
	}
	return c, nil
}

func (c *Catalog) ListCategory(key Category) []*Product {
	return c.byCategory[key]
}

func (c *Catalog) AllProducts() []*Product {
	var all []*Product
	for _, key := range Categories {
		all = append(all, c.byCategory[key]...)
	}
	return all
}

func (c *Catalog) Specials() []*Product {
	return c.byCategory[CategorySpecials]
}

func (c *Catalog) Lookup(id uuid.UUID) (*Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}
