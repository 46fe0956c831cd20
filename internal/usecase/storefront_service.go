package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/yussuf3468/HassanFinanceSystem-sub001/internal/domain"
)

// catalogCacheKey is the cache key for the full products snapshot
const catalogCacheKey = "catalog:products"

// DefaultSuggestLimit caps live search-as-you-type suggestions.
const DefaultSuggestLimit = 5

// StorefrontConfig holds configuration for the storefront service
type StorefrontConfig struct {
	CacheTTL     time.Duration
	SuggestLimit int
	RecentLimit  int
	Search       SearchConfig
}

// StorefrontService serves catalog search, suggestions and facets with a
// cached snapshot of the hosted products table in front of the store client.
type StorefrontService struct {
	cache        domain.CacheRepository
	store        domain.ProductStore
	search       *SearchService
	recent       *RecentQueries
	cacheTTL     time.Duration
	suggestLimit int
}

// NewStorefrontService creates a new storefront service with dependencies
func NewStorefrontService(
	cache domain.CacheRepository,
	store domain.ProductStore,
	config StorefrontConfig,
) *StorefrontService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 5 * time.Minute
	}

	suggestLimit := config.SuggestLimit
	if suggestLimit <= 0 {
		suggestLimit = DefaultSuggestLimit
	}

	return &StorefrontService{
		cache:        cache,
		store:        store,
		search:       NewSearchService(config.Search),
		recent:       NewRecentQueries(config.RecentLimit),
		cacheTTL:     cacheTTL,
		suggestLimit: suggestLimit,
	}
}

// Search runs a full catalog search: filter, rank, sort, truncate.
// Non-blank queries are recorded in the recent-search history.
func (s *StorefrontService) Search(ctx context.Context, query *domain.CatalogQuery) ([]domain.SearchResult, error) {
	if query == nil {
		return nil, domain.ErrInvalidRequest
	}
	if query.SortBy != "" && !domain.IsValidSort(query.SortBy) {
		return nil, fmt.Errorf("%w: unknown sort option %q", domain.ErrInvalidRequest, query.SortBy)
	}

	products, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	filtered := FilterProducts(products, query.Filters)

	results, err := s.search.SearchProducts(ctx, filtered, query.Query)
	if err != nil {
		return nil, err
	}

	if query.SortBy != "" && query.SortBy != domain.SortRelevance {
		results = SortProducts(results, query.SortBy)
	}

	if query.Limit > 0 && len(results) > query.Limit {
		results = results[:query.Limit]
	}

	s.recent.Record(query.Query)

	return results, nil
}

// Suggest returns the top-ranked products for a partial query, for the
// live suggestion dropdown. A blank query yields no suggestions.
func (s *StorefrontService) Suggest(ctx context.Context, query string) ([]domain.SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, nil
	}

	products, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	results, err := s.search.SearchProducts(ctx, products, query)
	if err != nil {
		return nil, err
	}

	if len(results) > s.suggestLimit {
		results = results[:s.suggestLimit]
	}
	return results, nil
}

// Facets computes the filter-control metadata for the whole catalog.
func (s *StorefrontService) Facets(ctx context.Context) (*domain.FacetMetadata, error) {
	products, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.FacetMetadata{
		Categories:   GetCategories(products),
		PriceRange:   GetPriceRange(products),
		Availability: GetAvailability(products),
	}, nil
}

// RecentSearches returns recently submitted queries, most recent first.
func (s *StorefrontService) RecentSearches() []string {
	return s.recent.List()
}

// loadCatalog returns the products snapshot, from cache when fresh.
// Flow: check cache -> list from store -> cache -> return
func (s *StorefrontService) loadCatalog(ctx context.Context) ([]domain.Product, error) {
	if cached, err := s.cache.Get(ctx, catalogCacheKey); err == nil {
		return cached, nil
	}

	products, err := s.store.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreAPIFailure, err)
	}

	if err := s.cache.Set(ctx, catalogCacheKey, products, s.cacheTTL); err != nil {
		// A cold cache is not fatal; the next request hits the store again
		log.Printf("[STOREFRONT] failed to cache catalog snapshot: %v", err)
	}

	return products, nil
}
