package usecase

import (
	"sort"

	"github.com/yussuf3468/HassanFinanceSystem-sub001/internal/domain"
)

// FilterProducts keeps only products satisfying every set constraint.
// Unset fields impose no constraint; a category of "" or "all" is unset.
// Price bounds are inclusive and may be given independently.
func FilterProducts(products []domain.Product, filters domain.FilterOptions) []domain.Product {
	filtered := make([]domain.Product, 0, len(products))

	for _, p := range products {
		if filters.Category != "" && filters.Category != domain.CategoryAll && p.Category != filters.Category {
			continue
		}
		if filters.MinPrice != nil && p.SellingPrice < *filters.MinPrice {
			continue
		}
		if filters.MaxPrice != nil && p.SellingPrice > *filters.MaxPrice {
			continue
		}
		if filters.InStockOnly && p.QuantityInStock <= 0 {
			continue
		}
		if filters.Featured != nil && p.Featured != *filters.Featured {
			continue
		}
		filtered = append(filtered, p)
	}

	return filtered
}

// GetCategories returns the distinct non-empty category values of a product
// collection, alphabetically sorted.
func GetCategories(products []domain.Product) []string {
	seen := make(map[string]bool)
	var categories []string

	for _, p := range products {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		categories = append(categories, p.Category)
	}

	sort.Strings(categories)
	return categories
}

// GetPriceRange returns the min and max selling price across the collection.
// An empty collection yields {0, 0}.
func GetPriceRange(products []domain.Product) domain.PriceRange {
	if len(products) == 0 {
		return domain.PriceRange{}
	}

	r := domain.PriceRange{
		Min: products[0].SellingPrice,
		Max: products[0].SellingPrice,
	}
	for _, p := range products[1:] {
		if p.SellingPrice < r.Min {
			r.Min = p.SellingPrice
		}
		if p.SellingPrice > r.Max {
			r.Max = p.SellingPrice
		}
	}
	return r
}

// GetAvailability counts in-stock and out-of-stock products.
func GetAvailability(products []domain.Product) domain.Availability {
	var a domain.Availability
	for _, p := range products {
		if p.QuantityInStock > 0 {
			a.InStock++
		} else {
			a.OutOfStock++
		}
	}
	return a
}
