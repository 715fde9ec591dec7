// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "strings"

// Category is the fixed set of product categories the store sells.
type Category string

const (
	CategoryChocolate    Category = "chocolate"
	CategoryStrawberries Category = "strawberries"
	CategoryCandies      Category = "candies"
	CategoryStatues      Category = "statues"
)

// Categories lists every valid category in display order.
func Categories() []Category {
	return []Category{
		CategoryChocolate,
		CategoryStrawberries,
		CategoryCandies,
		CategoryStatues,
	}
}

// Valid reports whether the category is one of the fixed set.
func (c Category) Valid() bool {
	switch c {
	case CategoryChocolate, CategoryStrawberries, CategoryCandies, CategoryStatues:
		return true
	}

	return false
}

// Product is a single catalog entry. The name doubles as the identifier:
// its slug is the document key, so re-adding a product with the same name
// overwrites the stored record.
type Product struct {
	Name        string   `json:"name"`
	Category    Category `json:"category"`
	Price       float64  `json:"price"`
	Weight      float64  `json:"weight"`
	Image       string   `json:"image"`       // public URL of the product image in blob storage
	Description string   `json:"description"`
	Keywords    string   `json:"keywords"` // lowercased free text, the sole search index
}

// Slug returns the deterministic document key for the product:
// the name lowercased with spaces replaced by underscores.
func (p Product) Slug() string {
	return Slugify(p.Name)
}

// Slugify derives a catalog document key from a product name.
func Slugify(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", "_"))
}
