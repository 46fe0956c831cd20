package usecase

import (
	"context"
	"log"
	"sort"
	"strings"

	"github.com/yussuf3468/HassanFinanceSystem-sub001/internal/domain"
)

// DefaultMaxResults caps the number of ranked results returned per query.
const DefaultMaxResults = 100

// SearchConfig holds configuration for the search service
type SearchConfig struct {
	FuzzyThreshold     float64
	IncludeDescription bool
	MaxResults         int
	EnableDebugLogging bool
}

// DefaultSearchConfig returns the search defaults used by the storefront.
func DefaultSearchConfig() SearchConfig {
	return SearchConfig{
		FuzzyThreshold:     DefaultFuzzyThreshold,
		IncludeDescription: true,
		MaxResults:         DefaultMaxResults,
	}
}

// SearchService ranks products against free-text queries
type SearchService struct {
	cfg SearchConfig
}

// NewSearchService creates a new search service with the given configuration
func NewSearchService(cfg SearchConfig) *SearchService {
	if cfg.FuzzyThreshold <= 0 {
		cfg.FuzzyThreshold = DefaultFuzzyThreshold
	}
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = DefaultMaxResults
	}
	return &SearchService{cfg: cfg}
}

// Config returns the effective configuration after defaulting.
func (s *SearchService) Config() SearchConfig {
	return s.cfg
}

// SearchProducts ranks the product collection against the query.
//
// An empty or all-whitespace query means "show everything": every product is
// returned in input order with score 1 and no matched fields. Otherwise the
// query is trimmed and lowercased once, each product is scored, zero-score
// products are dropped, and the remainder is sorted by score descending
// (stable, so input order breaks ties) and truncated to MaxResults.
func (s *SearchService) SearchProducts(ctx context.Context, products []domain.Product, query string) ([]domain.SearchResult, error) {
	normalized := strings.ToLower(strings.TrimSpace(query))

	if normalized == "" {
		results := make([]domain.SearchResult, 0, len(products))
		for i := range products {
			results = append(results, domain.SearchResult{
				Product:   &products[i],
				Score:     1,
				MatchType: domain.MatchExact,
			})
		}
		return results, nil
	}

	var results []domain.SearchResult
	for i := range products {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		result, ok := ScoreProduct(&products[i], normalized, s.cfg)
		if !ok {
			continue
		}

		if s.cfg.EnableDebugLogging {
			log.Printf("[SEARCH] Product: %q | Score: %.0f | Type: %s | Fields: %v",
				products[i].Name, result.Score, result.MatchType, result.MatchedFields)
		}

		results = append(results, result)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > s.cfg.MaxResults {
		results = results[:s.cfg.MaxResults]
	}

	if s.cfg.EnableDebugLogging {
		log.Printf("[SEARCH] Query: %q | %d of %d products matched", normalized, len(results), len(products))
	}

	return results, nil
}
