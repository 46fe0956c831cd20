package usecase

import (
	"strings"

	"github.com/yussuf3468/HassanFinanceSystem-sub001/internal/domain"
)

// Score deltas for the per-field match ladders
const (
	scoreNameExact     = 100.0
	scoreNamePrefix    = 80.0
	scoreNameSubstring = 60.0
	scoreNameFuzzy     = 40.0

	scoreCategoryExact     = 50.0
	scoreCategorySubstring = 30.0
	scoreCategoryFuzzy     = 20.0

	scoreDescriptionSubstring = 15.0
	scoreDescriptionFuzzy     = 10.0

	scoreInStockBoost  = 5.0
	scoreFeaturedBoost = 3.0
)

// fieldRule is one rung of a field's match ladder: a predicate over the
// lowercased field value and normalized query, the score it contributes, and
// an optional matchType override. Rules are evaluated top to bottom and the
// first match wins for that field.
type fieldRule struct {
	match     func(value, query string, threshold float64) bool
	delta     float64
	matchType domain.MatchType // empty string leaves matchType unchanged
}

var nameRules = []fieldRule{
	{matchExact, scoreNameExact, domain.MatchExact},
	{matchPrefix, scoreNamePrefix, domain.MatchExact},
	{matchSubstring, scoreNameSubstring, domain.MatchExact},
	{matchFuzzy, scoreNameFuzzy, domain.MatchFuzzy},
}

var categoryRules = []fieldRule{
	{matchExact, scoreCategoryExact, ""},
	{matchSubstring, scoreCategorySubstring, ""},
	{matchFuzzy, scoreCategoryFuzzy, ""},
}

var descriptionRules = []fieldRule{
	{matchSubstring, scoreDescriptionSubstring, ""},
	{matchFuzzy, scoreDescriptionFuzzy, ""},
}

func matchExact(value, query string, _ float64) bool {
	return value == query
}

func matchPrefix(value, query string, _ float64) bool {
	return strings.HasPrefix(value, query)
}

func matchSubstring(value, query string, _ float64) bool {
	return strings.Contains(value, query)
}

func matchFuzzy(value, query string, threshold float64) bool {
	return FuzzyContains(value, query, threshold)
}

// applyLadder runs one field's ladder against a lowercased field value and
// returns the first matching rule, if any.
func applyLadder(rules []fieldRule, value, query string, threshold float64) (fieldRule, bool) {
	for _, rule := range rules {
		if rule.match(value, query, threshold) {
			return rule, true
		}
	}
	return fieldRule{}, false
}

// ScoreProduct computes the cumulative relevance score of a product against a
// query. The query must already be trimmed and lowercased. The name, category
// and description ladders contribute independently; within each ladder only
// the first matching rule fires. Stock and featured boosts apply regardless
// of textual overlap. A product with total score zero is reported as no
// match (ok=false).
func ScoreProduct(product *domain.Product, query string, cfg SearchConfig) (domain.SearchResult, bool) {
	result := domain.SearchResult{
		Product:   product,
		MatchType: domain.MatchPartial,
	}

	if rule, ok := applyLadder(nameRules, strings.ToLower(product.Name), query, cfg.FuzzyThreshold); ok {
		result.Score += rule.delta
		result.MatchType = rule.matchType
		result.MatchedFields = append(result.MatchedFields, "name")
	}

	if rule, ok := applyLadder(categoryRules, strings.ToLower(product.Category), query, cfg.FuzzyThreshold); ok {
		result.Score += rule.delta
		result.MatchedFields = append(result.MatchedFields, "category")
	}

	if cfg.IncludeDescription && product.Description != "" {
		if rule, ok := applyLadder(descriptionRules, strings.ToLower(product.Description), query, cfg.FuzzyThreshold); ok {
			result.Score += rule.delta
			result.MatchedFields = append(result.MatchedFields, "description")
		}
	}

	if product.QuantityInStock > 0 {
		result.Score += scoreInStockBoost
	}
	if product.Featured {
		result.Score += scoreFeaturedBoost
	}

	if result.Score == 0 {
		return domain.SearchResult{}, false
	}

	return result, true
}
