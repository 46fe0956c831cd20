package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yussuf3468/HassanFinanceSystem-sub001/config"
	"github.com/yussuf3468/HassanFinanceSystem-sub001/internal/domain"
	"github.com/yussuf3468/HassanFinanceSystem-sub001/internal/usecase"
)

// TestMain sets up test environment before running tests
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// --- Mock implementations backing the storefront service ---

// mockProductStore is a mock implementation of domain.ProductStore
type mockProductStore struct {
	products []domain.Product
	listErr  error
}

func (m *mockProductStore) ListProducts(ctx context.Context) ([]domain.Product, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.products, nil
}

func (m *mockProductStore) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	for i := range m.products {
		if m.products[i].ID == id {
			return &m.products[i], nil
		}
	}
	return nil, domain.ErrProductNotFound
}

// mockCacheRepository is a mock implementation of domain.CacheRepository
type mockCacheRepository struct {
	data map[string][]domain.Product
}

func newMockCacheRepository() *mockCacheRepository {
	return &mockCacheRepository{data: make(map[string][]domain.Product)}
}

func (m *mockCacheRepository) Get(ctx context.Context, key string) ([]domain.Product, error) {
	if products, ok := m.data[key]; ok {
		return products, nil
	}
	return nil, domain.ErrCacheMiss
}

func (m *mockCacheRepository) Set(ctx context.Context, key string, products []domain.Product, ttl time.Duration) error {
	m.data[key] = products
	return nil
}

func (m *mockCacheRepository) Delete(ctx context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func (m *mockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	_, ok := m.data[key]
	return ok, nil
}

func storefrontFixture() []domain.Product {
	return []domain.Product{
		{ID: "1", Name: "Oxford Dictionary", Category: "Books", SellingPrice: 12, QuantityInStock: 5, Featured: true},
		{ID: "2", Name: "Pocket Dictionary", Category: "Books", SellingPrice: 6, QuantityInStock: 2},
		{ID: "3", Name: "Dictionary of Idioms", Category: "Books", SellingPrice: 20, QuantityInStock: 0},
		{ID: "4", Name: "Ballpoint Pen", Category: "Pens", SellingPrice: 1.5, QuantityInStock: 100},
		{ID: "5", Name: "Stapler", Category: "Office", SellingPrice: 8, QuantityInStock: 0},
	}
}

// setupTestRouter creates a test router over a real storefront service with
// mocked store and cache
func setupTestRouter(store domain.ProductStore) *gin.Engine {
	cfg := &config.Config{
		Server: config.ServerConfig{
			Port:           "8080",
			Environment:    "test",
			AllowedOrigins: []string{"http://localhost:*"},
		},
	}

	storefront := usecase.NewStorefrontService(
		newMockCacheRepository(),
		store,
		usecase.StorefrontConfig{
			CacheTTL: 5 * time.Minute,
			Search:   usecase.DefaultSearchConfig(),
		},
	)

	handler := NewHandler(storefront)
	return SetupRouter(cfg, handler)
}

func defaultTestRouter() *gin.Engine {
	return setupTestRouter(&mockProductStore{products: storefrontFixture()})
}

// TestHealthCheckEndpoint tests the health check endpoint
func TestHealthCheckEndpoint(t *testing.T) {
	t.Run("returns healthy status", func(t *testing.T) {
		router := defaultTestRouter()

		req, _ := http.NewRequest("GET", "/health", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusOK)
		}

		var response map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}

		if response["status"] != "healthy" {
			t.Errorf("status = %v, want healthy", response["status"])
		}
		if response["service"] != "storefront-backend" {
			t.Errorf("service = %v, want storefront-backend", response["service"])
		}
		version, ok := response["version"].(string)
		if !ok || strings.TrimSpace(version) == "" {
			t.Errorf("version = %v, want non-empty string", response["version"])
		}
	})

	t.Run("accepts GET requests only", func(t *testing.T) {
		router := defaultTestRouter()

		methods := []string{"POST", "PUT", "DELETE", "PATCH"}

		for _, method := range methods {
			req, _ := http.NewRequest(method, "/health", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if w.Code != http.StatusNotFound {
				t.Errorf("Method %s: Status = %d, want %d", method, w.Code, http.StatusNotFound)
			}
		}
	})
}

// TestSearchEndpoint tests the catalog search endpoint end-to-end
func TestSearchEndpoint(t *testing.T) {
	decode := func(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
		t.Helper()
		var response map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}
		return response
	}

	results := func(t *testing.T, response map[string]interface{}) []interface{} {
		t.Helper()
		raw, ok := response["results"].([]interface{})
		if !ok {
			t.Fatalf("results = %v, want array", response["results"])
		}
		return raw
	}

	resultName := func(t *testing.T, raw interface{}) string {
		t.Helper()
		entry, ok := raw.(map[string]interface{})
		if !ok {
			t.Fatalf("result entry = %v, want object", raw)
		}
		product, ok := entry["product"].(map[string]interface{})
		if !ok {
			t.Fatalf("product = %v, want object", entry["product"])
		}
		name, _ := product["name"].(string)
		return name
	}

	t.Run("ranks matching products", func(t *testing.T) {
		router := defaultTestRouter()

		req, _ := http.NewRequest("GET", "/api/v1/products/search?q=dictionary", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Status = %d, want %d", w.Code, http.StatusOK)
		}

		response := decode(t, w)
		got := results(t, response)

		if len(got) != 3 {
			t.Fatalf("len(results) = %d, want 3", len(got))
		}
		// Prefix match outranks substring matches
		if name := resultName(t, got[0]); name != "Dictionary of Idioms" {
			t.Errorf("first result = %s, want Dictionary of Idioms", name)
		}
		if response["query"] != "dictionary" {
			t.Errorf("query = %v, want dictionary", response["query"])
		}
		if response["total"] != float64(3) {
			t.Errorf("total = %v, want 3", response["total"])
		}
	})

	t.Run("empty query returns the full catalog", func(t *testing.T) {
		router := defaultTestRouter()

		req, _ := http.NewRequest("GET", "/api/v1/products/search", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Status = %d, want %d", w.Code, http.StatusOK)
		}

		response := decode(t, w)
		if response["total"] != float64(5) {
			t.Errorf("total = %v, want 5", response["total"])
		}
	})

	t.Run("applies category filter", func(t *testing.T) {
		router := defaultTestRouter()

		req, _ := http.NewRequest("GET", "/api/v1/products/search?category=Books", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		response := decode(t, w)
		if response["total"] != float64(3) {
			t.Errorf("total = %v, want 3", response["total"])
		}
	})

	t.Run("applies stock filter", func(t *testing.T) {
		router := defaultTestRouter()

		req, _ := http.NewRequest("GET", "/api/v1/products/search?in_stock=true", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		response := decode(t, w)
		if response["total"] != float64(3) {
			t.Errorf("total = %v, want 3", response["total"])
		}
	})

	t.Run("applies price sort", func(t *testing.T) {
		router := defaultTestRouter()

		req, _ := http.NewRequest("GET", "/api/v1/products/search?sort=price-low", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		response := decode(t, w)
		got := results(t, response)

		if len(got) == 0 {
			t.Fatal("results empty, want full catalog")
		}
		if name := resultName(t, got[0]); name != "Ballpoint Pen" {
			t.Errorf("first result = %s, want Ballpoint Pen", name)
		}
	})

	t.Run("applies result limit", func(t *testing.T) {
		router := defaultTestRouter()

		req, _ := http.NewRequest("GET", "/api/v1/products/search?limit=2", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		response := decode(t, w)
		if response["total"] != float64(2) {
			t.Errorf("total = %v, want 2", response["total"])
		}
	})

	t.Run("rejects malformed parameters", func(t *testing.T) {
		router := defaultTestRouter()

		badQueries := []string{
			"min_price=abc",
			"max_price=abc",
			"in_stock=maybe",
			"featured=maybe",
			"sort=banana",
			"limit=0",
			"limit=-5",
		}

		for _, raw := range badQueries {
			req, _ := http.NewRequest("GET", "/api/v1/products/search?"+raw, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("query %q: Status = %d, want %d", raw, w.Code, http.StatusBadRequest)
			}
		}
	})

	t.Run("returns 502 when the store is down", func(t *testing.T) {
		router := setupTestRouter(&mockProductStore{listErr: errors.New("connection refused")})

		req, _ := http.NewRequest("GET", "/api/v1/products/search?q=pen", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusBadGateway)
		}

		response := decode(t, w)
		if response["error"] != "product store unavailable" {
			t.Errorf("error = %v, want 'product store unavailable'", response["error"])
		}
	})
}

// TestSuggestEndpoint tests the live suggestion endpoint
func TestSuggestEndpoint(t *testing.T) {
	t.Run("returns capped suggestions", func(t *testing.T) {
		router := defaultTestRouter()

		req, _ := http.NewRequest("GET", "/api/v1/products/suggest?q=dictionary", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Status = %d, want %d", w.Code, http.StatusOK)
		}

		var response map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}

		total, _ := response["total"].(float64)
		if total == 0 || total > float64(usecase.DefaultSuggestLimit) {
			t.Errorf("total = %v, want 1..%d", response["total"], usecase.DefaultSuggestLimit)
		}
	})

	t.Run("blank query yields no suggestions", func(t *testing.T) {
		router := defaultTestRouter()

		req, _ := http.NewRequest("GET", "/api/v1/products/suggest?q=%20%20", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Status = %d, want %d", w.Code, http.StatusOK)
		}

		var response map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}

		if response["total"] != float64(0) {
			t.Errorf("total = %v, want 0", response["total"])
		}
	})
}

// TestFacetsEndpoint tests the facets endpoint
func TestFacetsEndpoint(t *testing.T) {
	router := defaultTestRouter()

	req, _ := http.NewRequest("GET", "/api/v1/products/facets", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Status = %d, want %d", w.Code, http.StatusOK)
	}

	var facets domain.FacetMetadata
	if err := json.Unmarshal(w.Body.Bytes(), &facets); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	wantCategories := []string{"Books", "Office", "Pens"}
	if len(facets.Categories) != len(wantCategories) {
		t.Fatalf("Categories = %v, want %v", facets.Categories, wantCategories)
	}
	for i, want := range wantCategories {
		if facets.Categories[i] != want {
			t.Errorf("Categories[%d] = %s, want %s", i, facets.Categories[i], want)
		}
	}

	if facets.PriceRange.Min != 1.5 {
		t.Errorf("PriceRange.Min = %g, want 1.5", facets.PriceRange.Min)
	}
	if facets.PriceRange.Max != 20 {
		t.Errorf("PriceRange.Max = %g, want 20", facets.PriceRange.Max)
	}
	if facets.Availability.InStock != 3 {
		t.Errorf("Availability.InStock = %d, want 3", facets.Availability.InStock)
	}
	if facets.Availability.OutOfStock != 2 {
		t.Errorf("Availability.OutOfStock = %d, want 2", facets.Availability.OutOfStock)
	}
}

// TestRecentSearchesEndpoint tests the recent-search history endpoint
func TestRecentSearchesEndpoint(t *testing.T) {
	router := defaultTestRouter()

	for _, q := range []string{"pen", "stapler", "dictionary"} {
		req, _ := http.NewRequest("GET", "/api/v1/products/search?q="+q, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("search %q status = %d, want %d", q, w.Code, http.StatusOK)
		}
	}

	req, _ := http.NewRequest("GET", "/api/v1/products/recent", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Status = %d, want %d", w.Code, http.StatusOK)
	}

	var response struct {
		Queries []string `json:"queries"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	want := []string{"dictionary", "stapler", "pen"}
	if len(response.Queries) != len(want) {
		t.Fatalf("Queries = %v, want %v", response.Queries, want)
	}
	for i, q := range want {
		if response.Queries[i] != q {
			t.Errorf("Queries[%d] = %s, want %s", i, response.Queries[i], q)
		}
	}
}

// TestCORSIntegration tests CORS headers work end-to-end with full router
func TestCORSIntegration(t *testing.T) {
	t.Run("health endpoint has CORS for the web client", func(t *testing.T) {
		router := defaultTestRouter()

		req, _ := http.NewRequest("GET", "/health", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusOK)
		}

		gotOrigin := w.Header().Get("Access-Control-Allow-Origin")
		if gotOrigin != "http://localhost:5173" {
			t.Errorf("Access-Control-Allow-Origin = %q, want %q", gotOrigin, "http://localhost:5173")
		}

		gotCreds := w.Header().Get("Access-Control-Allow-Credentials")
		if gotCreds != "true" {
			t.Errorf("Access-Control-Allow-Credentials = %q, want %q", gotCreds, "true")
		}
	})

	t.Run("search endpoint has CORS for the web client", func(t *testing.T) {
		router := defaultTestRouter()

		req, _ := http.NewRequest("GET", "/api/v1/products/search?q=pen", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		gotOrigin := w.Header().Get("Access-Control-Allow-Origin")
		if gotOrigin != "http://localhost:5173" {
			t.Errorf("Access-Control-Allow-Origin = %q, want %q", gotOrigin, "http://localhost:5173")
		}
	})
}

// TestRecoveryMiddleware tests panic recovery
func TestRecoveryMiddleware(t *testing.T) {
	t.Run("recovers from panic without crashing server", func(t *testing.T) {
		router := defaultTestRouter()

		router.GET("/panic", func(c *gin.Context) {
			panic("test panic")
		})

		req, _ := http.NewRequest("GET", "/panic", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusInternalServerError)
		}
	})
}

// TestAPIVersioning tests that API v1 routes are correctly versioned
func TestAPIVersioning(t *testing.T) {
	t.Run("v1 routes are accessible", func(t *testing.T) {
		router := defaultTestRouter()

		req, _ := http.NewRequest("GET", "/api/v1/products/search", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusOK)
		}
	})

	t.Run("non-versioned routes return 404", func(t *testing.T) {
		router := defaultTestRouter()

		req, _ := http.NewRequest("GET", "/api/products/search", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusNotFound)
		}
	})
}

// TestJSONResponses tests that all responses are valid JSON
func TestJSONResponses(t *testing.T) {
	endpoints := []struct {
		method string
		path   string
	}{
		{"GET", "/health"},
		{"GET", "/api/v1/products/search"},
		{"GET", "/api/v1/products/suggest"},
		{"GET", "/api/v1/products/facets"},
		{"GET", "/api/v1/products/recent"},
	}

	for _, endpoint := range endpoints {
		t.Run(endpoint.method+" "+endpoint.path, func(t *testing.T) {
			router := defaultTestRouter()

			req, _ := http.NewRequest(endpoint.method, endpoint.path, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			gotContentType := w.Header().Get("Content-Type")
			wantContentType := "application/json; charset=utf-8"
			if gotContentType != wantContentType {
				t.Errorf("Content-Type = %q, want %q", gotContentType, wantContentType)
			}

			var response interface{}
			if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
				t.Errorf("Response should be valid JSON, got error: %v", err)
			}
		})
	}
}
