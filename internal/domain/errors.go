package domain

import "errors"

var (
	// ErrProductNotFound is returned when the products table has no rows
	ErrProductNotFound = errors.New("no products found in store")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrCacheUnavailable is returned when cache service is unavailable
	ErrCacheUnavailable = errors.New("cache service unavailable")

	// ErrStoreAPIFailure is returned when a table store API request fails
	ErrStoreAPIFailure = errors.New("table store API request failed")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")
)
