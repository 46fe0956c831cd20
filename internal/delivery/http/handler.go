package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yussuf3468/HassanFinanceSystem-sub001/internal/domain"
	"github.com/yussuf3468/HassanFinanceSystem-sub001/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	storefront *usecase.StorefrontService
}

// NewHandler creates a new HTTP handler
func NewHandler(storefront *usecase.StorefrontService) *Handler {
	return &Handler{storefront: storefront}
}

// SearchResponse is the body returned by the search and suggest endpoints
type SearchResponse struct {
	Results []domain.SearchResult `json:"results"`
	Total   int                   `json:"total"`
	Query   string                `json:"query"`
	TookMs  int64                 `json:"took_ms"`
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "storefront-backend",
		"version": "1.0.0",
	})
}

// SearchProducts handles full catalog search with filters and sorting
func (h *Handler) SearchProducts(c *gin.Context) {
	query, err := parseCatalogQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start := time.Now()
	results, err := h.storefront.Search(c.Request.Context(), query)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SearchResponse{
		Results: results,
		Total:   len(results),
		Query:   query.Query,
		TookMs:  time.Since(start).Milliseconds(),
	})
}

// SuggestProducts handles live search-as-you-type suggestions
func (h *Handler) SuggestProducts(c *gin.Context) {
	q := c.Query("q")

	start := time.Now()
	results, err := h.storefront.Suggest(c.Request.Context(), q)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SearchResponse{
		Results: results,
		Total:   len(results),
		Query:   strings.TrimSpace(q),
		TookMs:  time.Since(start).Milliseconds(),
	})
}

// GetFacets returns filter-control metadata for the catalog
func (h *Handler) GetFacets(c *gin.Context) {
	facets, err := h.storefront.Facets(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, facets)
}

// GetRecentSearches returns recently submitted search queries
func (h *Handler) GetRecentSearches(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"queries": h.storefront.RecentSearches(),
	})
}

// respondError maps domain errors to HTTP status codes
func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrStoreAPIFailure):
		c.JSON(http.StatusBadGateway, gin.H{"error": "product store unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// parseCatalogQuery builds a CatalogQuery from search endpoint query params
func parseCatalogQuery(c *gin.Context) (*domain.CatalogQuery, error) {
	query := &domain.CatalogQuery{
		Query: c.Query("q"),
		Filters: domain.FilterOptions{
			Category: c.Query("category"),
		},
	}

	if raw := c.Query("min_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, errors.New("min_price must be a number")
		}
		query.Filters.MinPrice = &v
	}

	if raw := c.Query("max_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, errors.New("max_price must be a number")
		}
		query.Filters.MaxPrice = &v
	}

	if raw := c.Query("in_stock"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, errors.New("in_stock must be a boolean")
		}
		query.Filters.InStockOnly = v
	}

	if raw := c.Query("featured"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, errors.New("featured must be a boolean")
		}
		query.Filters.Featured = &v
	}

	if raw := c.Query("sort"); raw != "" {
		sortBy := domain.SortOption(raw)
		if !domain.IsValidSort(sortBy) {
			return nil, errors.New("unknown sort option: " + raw)
		}
		query.SortBy = sortBy
	}

	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			return nil, errors.New("limit must be a positive integer")
		}
		query.Limit = v
	}

	return query, nil
}
