package domain

import (
	"context"
	"time"
)

// ProductStore defines the interface for reading the hosted products table.
// The search core never writes through this interface.
type ProductStore interface {
	ListProducts(ctx context.Context) ([]Product, error)
	GetProduct(ctx context.Context, id string) (*Product, error)
}

// CacheRepository defines the interface for caching catalog snapshots
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]Product, error)
	Set(ctx context.Context, key string, products []Product, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
