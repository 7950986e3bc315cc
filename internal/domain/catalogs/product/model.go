// Package product provides the Product catalog: retail goods sold at
// the counter (pomade, shampoo, blades).
package product

import (
	"context"

	"barberdesk/internal/core/apperror"
	"barberdesk/internal/core/entity"
	"barberdesk/internal/core/types"
)

// Product represents a retail good with tracked stock.
type Product struct {
	entity.Catalog

	Price types.Money `db:"price" json:"price"`

	// Stock is the on-hand quantity; decremented by sales.
	Stock int `db:"stock" json:"stock"`

	// MinStock triggers the low-stock report when Stock falls below it.
	MinStock int `db:"min_stock" json:"minStock"`

	Category *string `db:"category" json:"category,omitempty"`
}

// NewProduct creates a new Product with required fields.
func NewProduct(code, name string, price types.Money) *Product {
	return &Product{
		Catalog: entity.NewCatalog(code, name),
		Price:   price,
	}
}

// Validate implements entity.Validatable interface.
func (p *Product) Validate(ctx context.Context) error {
	if err := p.Catalog.Validate(ctx); err != nil {
		return err
	}

	if p.Price.IsNegative() {
		return apperror.NewValidation("price cannot be negative").
			WithDetail("field", "price")
	}
	if p.Stock < 0 {
		return apperror.NewValidation("stock cannot be negative").
			WithDetail("field", "stock")
	}
	if p.MinStock < 0 {
		return apperror.NewValidation("min stock cannot be negative").
			WithDetail("field", "minStock")
	}

	return nil
}

// LowStock reports whether the product is at or below its minimum.
func (p *Product) LowStock() bool {
	return p.Stock <= p.MinStock
}
