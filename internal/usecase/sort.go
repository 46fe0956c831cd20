package usecase

import (
	"sort"
	"strings"
	"time"

	"github.com/yussuf3468/HassanFinanceSystem-sub001/internal/domain"
)

// createdAtLayouts are the timestamp formats the hosted table store emits
var createdAtLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseCreatedAt parses a product timestamp. Missing or unparseable values
// sort as the Unix epoch, i.e. oldest.
func parseCreatedAt(value string) time.Time {
	for _, layout := range createdAtLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Unix(0, 0)
}

// SortProducts re-orders search results by the chosen sort key. It returns a
// new slice and never mutates the input. Relevance and unrecognized sort
// values leave the order unchanged.
func SortProducts(results []domain.SearchResult, sortBy domain.SortOption) []domain.SearchResult {
	sorted := make([]domain.SearchResult, len(results))
	copy(sorted, results)

	switch sortBy {
	case domain.SortPriceLow:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Product.SellingPrice < sorted[j].Product.SellingPrice
		})
	case domain.SortPriceHigh:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Product.SellingPrice > sorted[j].Product.SellingPrice
		})
	case domain.SortNameAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return strings.ToLower(sorted[i].Product.Name) < strings.ToLower(sorted[j].Product.Name)
		})
	case domain.SortNameDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return strings.ToLower(sorted[i].Product.Name) > strings.ToLower(sorted[j].Product.Name)
		})
	case domain.SortNewest:
		sort.SliceStable(sorted, func(i, j int) bool {
			return parseCreatedAt(sorted[i].Product.CreatedAt).After(parseCreatedAt(sorted[j].Product.CreatedAt))
		})
	}

	return sorted
}
