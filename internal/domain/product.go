package domain

// Product represents a single row from the hosted products table.
// The search core only reads these fields; it never mutates a Product.
type Product struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Category        string  `json:"category,omitempty"`
	Description     string  `json:"description,omitempty"`
	SellingPrice    float64 `json:"selling_price"`
	QuantityInStock int     `json:"quantity_in_stock"`
	Featured        bool    `json:"featured"`
	CreatedAt       string  `json:"created_at,omitempty"` // timestamp string as stored
}

// MatchType classifies the strongest name match found for a product.
type MatchType string

const (
	MatchExact   MatchType = "exact"
	MatchFuzzy   MatchType = "fuzzy"
	MatchPartial MatchType = "partial"
)

// SearchResult pairs a product with its relevance score for one query.
// The Product pointer is shared with the input collection, not a copy.
type SearchResult struct {
	Product       *Product  `json:"product"`
	Score         float64   `json:"score"`
	MatchType     MatchType `json:"matchType"`
	MatchedFields []string  `json:"matchedFields,omitempty"`
}

// SortOption selects the ordering applied to search results.
type SortOption string

const (
	SortRelevance SortOption = "relevance"
	SortPriceLow  SortOption = "price-low"
	SortPriceHigh SortOption = "price-high"
	SortNameAsc   SortOption = "name-asc"
	SortNameDesc  SortOption = "name-desc"
	SortNewest    SortOption = "newest"
)

// ValidSortOptions returns the list of recognized sort options.
func ValidSortOptions() []SortOption {
	return []SortOption{
		SortRelevance, SortPriceLow, SortPriceHigh,
		SortNameAsc, SortNameDesc, SortNewest,
	}
}

// IsValidSort checks whether the given value is a recognized sort option.
func IsValidSort(sort SortOption) bool {
	for _, s := range ValidSortOptions() {
		if s == sort {
			return true
		}
	}
	return false
}

// CategoryAll is the category filter sentinel meaning "no category constraint".
const CategoryAll = "all"

// FilterOptions holds the structural catalog filters. Nil pointer fields and
// an empty (or "all") category impose no constraint on that dimension.
type FilterOptions struct {
	Category    string   `json:"category,omitempty"`
	MinPrice    *float64 `json:"min_price,omitempty"`
	MaxPrice    *float64 `json:"max_price,omitempty"`
	InStockOnly bool     `json:"in_stock_only,omitempty"`
	Featured    *bool    `json:"featured,omitempty"`
}

// CatalogQuery holds all parameters for one storefront search request.
type CatalogQuery struct {
	Query   string        `json:"query"`
	Filters FilterOptions `json:"filters"`
	SortBy  SortOption    `json:"sort_by,omitempty"`
	Limit   int           `json:"limit,omitempty"`
}

// PriceRange is the min/max selling price across a product collection.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Availability counts products by stock state.
type Availability struct {
	InStock    int `json:"inStock"`
	OutOfStock int `json:"outOfStock"`
}

// FacetMetadata is the derived summary data used to populate filter controls.
type FacetMetadata struct {
	Categories   []string     `json:"categories"`
	PriceRange   PriceRange   `json:"priceRange"`
	Availability Availability `json:"availability"`
}
