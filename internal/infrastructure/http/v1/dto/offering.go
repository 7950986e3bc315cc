package dto

import (
	"barberdesk/internal/core/types"
	"barberdesk/internal/domain/catalogs/offering"
)

// --- Request DTOs ---

// CreateOfferingRequest is the request body for creating a service.
type CreateOfferingRequest struct {
	Code            string  `json:"code"`
	Name            string  `json:"name" binding:"required"`
	DurationMinutes int     `json:"durationMinutes" binding:"required"`
	Price           string  `json:"price" binding:"required"`
	Description     *string `json:"description"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateOfferingRequest) ToEntity() (*offering.Offering, error) {
	price, err := parseMoney("price", r.Price)
	if err != nil {
		return nil, err
	}
	o := offering.NewOffering(r.Code, r.Name, r.DurationMinutes, price)
	o.Description = r.Description
	return o, nil
}

// UpdateOfferingRequest is the request body for updating a service.
type UpdateOfferingRequest struct {
	Name            string  `json:"name" binding:"required"`
	DurationMinutes int     `json:"durationMinutes" binding:"required"`
	Price           string  `json:"price" binding:"required"`
	Description     *string `json:"description,omitempty"`
	IsActive        bool    `json:"isActive"`
	Version         int     `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateOfferingRequest) ApplyTo(o *offering.Offering) error {
	price, err := parseMoney("price", r.Price)
	if err != nil {
		return err
	}
	o.Name = r.Name
	o.DurationMinutes = r.DurationMinutes
	o.Price = price
	o.Description = r.Description
	o.IsActive = r.IsActive
	o.Version = r.Version
	return nil
}

// --- Response DTOs ---

// OfferingResponse is the response body for a service.
type OfferingResponse struct {
	CatalogResponse
	DurationMinutes int     `json:"durationMinutes"`
	Price           string  `json:"price"`
	Description     *string `json:"description,omitempty"`
}

// FromOffering creates response DTO from domain entity.
func FromOffering(o *offering.Offering) *OfferingResponse {
	return &OfferingResponse{
		CatalogResponse: FromCatalog(o.Catalog),
		DurationMinutes: o.DurationMinutes,
		Price:           types.FormatMoney(o.Price),
		Description:     o.Description,
	}
}
