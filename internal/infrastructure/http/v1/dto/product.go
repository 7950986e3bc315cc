package dto

import (
	"barberdesk/internal/core/types"
	"barberdesk/internal/domain/catalogs/product"
)

// --- Request DTOs ---

// CreateProductRequest is the request body for creating a product.
type CreateProductRequest struct {
	Code     string  `json:"code"`
	Name     string  `json:"name" binding:"required"`
	Price    string  `json:"price" binding:"required"`
	Stock    int     `json:"stock"`
	MinStock int     `json:"minStock"`
	Category *string `json:"category"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateProductRequest) ToEntity() (*product.Product, error) {
	price, err := parseMoney("price", r.Price)
	if err != nil {
		return nil, err
	}
	p := product.NewProduct(r.Code, r.Name, price)
	p.Stock = r.Stock
	p.MinStock = r.MinStock
	p.Category = r.Category
	return p, nil
}

// UpdateProductRequest is the request body for updating a product.
type UpdateProductRequest struct {
	Name     string  `json:"name" binding:"required"`
	Price    string  `json:"price" binding:"required"`
	Stock    int     `json:"stock"`
	MinStock int     `json:"minStock"`
	Category *string `json:"category,omitempty"`
	IsActive bool    `json:"isActive"`
	Version  int     `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateProductRequest) ApplyTo(p *product.Product) error {
	price, err := parseMoney("price", r.Price)
	if err != nil {
		return err
	}
	p.Name = r.Name
	p.Price = price
	p.Stock = r.Stock
	p.MinStock = r.MinStock
	p.Category = r.Category
	p.IsActive = r.IsActive
	p.Version = r.Version
	return nil
}

// --- Response DTOs ---

// ProductResponse is the response body for a product.
type ProductResponse struct {
	CatalogResponse
	Price    string  `json:"price"`
	Stock    int     `json:"stock"`
	MinStock int     `json:"minStock"`
	LowStock bool    `json:"lowStock"`
	Category *string `json:"category,omitempty"`
}

// FromProduct creates response DTO from domain entity.
func FromProduct(p *product.Product) *ProductResponse {
	return &ProductResponse{
		CatalogResponse: FromCatalog(p.Catalog),
		Price:           types.FormatMoney(p.Price),
		Stock:           p.Stock,
		MinStock:        p.MinStock,
		LowStock:        p.LowStock(),
		Category:        p.Category,
	}
}
