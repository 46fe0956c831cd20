package store

import (
	"strings"

	"github.com/yussuf3468/HassanFinanceSystem-sub001/internal/domain"
)

// ProductRow is the wire shape of one products-table row. Numeric columns
// are nullable in the store schema, so they arrive as pointers.
type ProductRow struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Category        *string  `json:"category"`
	Description     *string  `json:"description"`
	SellingPrice    *float64 `json:"selling_price"`
	QuantityInStock *int     `json:"quantity_in_stock"`
	Featured        *bool    `json:"featured"`
	CreatedAt       *string  `json:"created_at"`
}

// MapToProduct converts a wire row to the domain Product model. Null columns
// become zero values and negative price/stock are clamped to zero, keeping
// the non-negativity invariants the search core relies on.
func MapToProduct(row ProductRow) domain.Product {
	p := domain.Product{
		ID:   row.ID,
		Name: strings.TrimSpace(row.Name),
	}

	if row.Category != nil {
		p.Category = strings.TrimSpace(*row.Category)
	}
	if row.Description != nil {
		p.Description = strings.TrimSpace(*row.Description)
	}
	if row.SellingPrice != nil && *row.SellingPrice > 0 {
		p.SellingPrice = *row.SellingPrice
	}
	if row.QuantityInStock != nil && *row.QuantityInStock > 0 {
		p.QuantityInStock = *row.QuantityInStock
	}
	if row.Featured != nil {
		p.Featured = *row.Featured
	}
	if row.CreatedAt != nil {
		p.CreatedAt = *row.CreatedAt
	}

	return p
}
