package models

import "fmt"

// ValidationError reports a product constructed from bad menu data. It is
// fatal at catalog-build time and never reaches an ordering user.
type ValidationError struct {
	Product string
	Field   string
	Reason  string
}

func (e *ValidationError) Error() string {
	if e.Product == "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("%s: invalid %s: %s", e.Product, e.Field, e.Reason)
}

// InvalidCategoryError reports a catalog built with a category key outside
// the fixed set.
type InvalidCategoryError struct {
	Key string
}

func (e *InvalidCategoryError) Error() string {
	return fmt.Sprintf("unknown product category %q", e.Key)
}
