package dto

import (
	"barberdesk/internal/core/types"
	"barberdesk/internal/domain/catalogs/client"
)

// --- Request DTOs ---

// CreateClientRequest is the request body for creating a client.
type CreateClientRequest struct {
	Code      string      `json:"code"`
	Name      string      `json:"name" binding:"required"`
	Phone     *string     `json:"phone"`
	Email     *string     `json:"email"`
	BirthDate *types.Date `json:"birthDate"`
	Notes     *string     `json:"notes"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateClientRequest) ToEntity() *client.Client {
	c := client.NewClient(r.Code, r.Name)
	c.Phone = r.Phone
	c.Email = r.Email
	c.BirthDate = r.BirthDate
	c.Notes = r.Notes
	return c
}

// UpdateClientRequest is the request body for updating a client.
type UpdateClientRequest struct {
	Name      string      `json:"name" binding:"required"`
	Phone     *string     `json:"phone,omitempty"`
	Email     *string     `json:"email,omitempty"`
	BirthDate *types.Date `json:"birthDate,omitempty"`
	Notes     *string     `json:"notes,omitempty"`
	IsActive  bool        `json:"isActive"`
	Version   int         `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateClientRequest) ApplyTo(c *client.Client) {
	c.Name = r.Name
	c.Phone = r.Phone
	c.Email = r.Email
	c.BirthDate = r.BirthDate
	c.Notes = r.Notes
	c.IsActive = r.IsActive
	c.Version = r.Version
}

// --- Response DTOs ---

// ClientResponse is the response body for a client.
type ClientResponse struct {
	CatalogResponse
	Phone     *string     `json:"phone,omitempty"`
	Email     *string     `json:"email,omitempty"`
	BirthDate *types.Date `json:"birthDate,omitempty"`
	Notes     *string     `json:"notes,omitempty"`
}

// FromClient creates response DTO from domain entity.
func FromClient(c *client.Client) *ClientResponse {
	return &ClientResponse{
		CatalogResponse: FromCatalog(c.Catalog),
		Phone:           c.Phone,
		Email:           c.Email,
		BirthDate:       c.BirthDate,
		Notes:           c.Notes,
	}
}
