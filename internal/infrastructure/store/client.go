package store

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/yussuf3468/HassanFinanceSystem-sub001/internal/domain"
	"golang.org/x/time/rate"
)

// maxResponseBody caps how much of a table store response is read into memory
const maxResponseBody = 4 << 20 // 4 MiB

// Client reads the products table of the hosted table store over its REST
// data API (PostgREST-style row filtering and ordering).
type Client struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates a new table store client
func NewClient(apiKey, baseURL string) *Client {
	// The hosted store throttles anonymous keys; 10 req/s with a small
	// burst stays inside the plan limits
	limiter := rate.NewLimiter(rate.Limit(10), 20)

	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		apiKey:      apiKey,
		baseURL:     baseURL,
		rateLimiter: limiter,
	}
}

// SetDebug toggles verbose request logging
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// debugLog logs only when debug mode is enabled
func (c *Client) debugLog(format string, args ...interface{}) {
	if c.debug {
		log.Printf("[STORE] "+format, args...)
	}
}

// exponentialBackoff returns the wait before the given retry attempt
func exponentialBackoff(attempt int) time.Duration {
	return time.Duration(250<<attempt) * time.Millisecond
}

// readLimitedBody reads at most limit bytes from a response body
func readLimitedBody(body io.Reader, limit int64) ([]byte, error) {
	return io.ReadAll(io.LimitReader(body, limit))
}

// doRequest executes an authenticated GET against the data API
func (c *Client) doRequest(ctx context.Context, reqURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreAPIFailure, err)
	}

	return resp, nil
}

// retryable reports whether a status code is worth another attempt.
// Client errors other than 429 are not transient.
func retryable(status int) bool {
	return status >= http.StatusInternalServerError || status == http.StatusTooManyRequests
}

// ListProducts fetches every row of the products table, newest first.
func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	params := url.Values{}
	params.Add("select", "*")
	params.Add("order", "created_at.desc")

	reqURL := fmt.Sprintf("%s/rest/v1/products?%s", c.baseURL, params.Encode())
	c.debugLog("ListProducts: %s", reqURL)

	rows, err := c.fetchRows(ctx, reqURL)
	if err != nil {
		return nil, err
	}

	products := make([]domain.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, MapToProduct(row))
	}

	c.debugLog("ListProducts: %d rows", len(products))
	return products, nil
}

// GetProduct fetches a single product row by id.
func (c *Client) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	params := url.Values{}
	params.Add("select", "*")
	params.Add("id", "eq."+id)
	params.Add("limit", "1")

	reqURL := fmt.Sprintf("%s/rest/v1/products?%s", c.baseURL, params.Encode())
	c.debugLog("GetProduct: %s", reqURL)

	rows, err := c.fetchRows(ctx, reqURL)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrProductNotFound
	}

	product := MapToProduct(rows[0])
	return &product, nil
}

// fetchRows runs the request with rate limiting and up to 3 attempts for
// transient failures.
func (c *Client) fetchRows(ctx context.Context, reqURL string) ([]ProductRow, error) {
	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter error: %w", err)
		}

		resp, err := c.doRequest(ctx, reqURL)
		if err != nil {
			c.debugLog("request error (attempt %d): %v", attempt, err)
			lastErr = err
			if ctx.Err() != nil {
				return nil, err
			}
			time.Sleep(exponentialBackoff(attempt))
			continue
		}

		body, readErr := readLimitedBody(resp.Body, maxResponseBody)
		resp.Body.Close()
		if readErr != nil {
			lastErr = fmt.Errorf("failed to read response: %w", readErr)
			continue
		}

		if resp.StatusCode != http.StatusOK {
			c.debugLog("API error (attempt %d) - status: %d, body: %s", attempt, resp.StatusCode, string(body))
			lastErr = fmt.Errorf("%w: status %d", domain.ErrStoreAPIFailure, resp.StatusCode)
			if !retryable(resp.StatusCode) {
				return nil, lastErr
			}
			time.Sleep(exponentialBackoff(attempt))
			continue
		}

		var rows []ProductRow
		if err := json.Unmarshal(body, &rows); err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}

		return rows, nil
	}

	return nil, lastErr
}
