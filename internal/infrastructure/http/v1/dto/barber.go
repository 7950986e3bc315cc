package dto

import (
	"barberdesk/internal/core/types"
	"barberdesk/internal/domain/catalogs/barber"
)

// --- Request DTOs ---

// CreateBarberRequest is the request body for creating a barber.
type CreateBarberRequest struct {
	Code         string      `json:"code"`
	Name         string      `json:"name" binding:"required"`
	Phone        *string     `json:"phone"`
	Email        *string     `json:"email"`
	Specialties  *string     `json:"specialties"`
	WorkingHours *string     `json:"workingHours"`
	HireDate     *types.Date `json:"hireDate"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateBarberRequest) ToEntity() *barber.Barber {
	b := barber.NewBarber(r.Code, r.Name)
	b.Phone = r.Phone
	b.Email = r.Email
	b.Specialties = r.Specialties
	b.WorkingHours = r.WorkingHours
	b.HireDate = r.HireDate
	return b
}

// UpdateBarberRequest is the request body for updating a barber.
type UpdateBarberRequest struct {
	Name         string      `json:"name" binding:"required"`
	Phone        *string     `json:"phone,omitempty"`
	Email        *string     `json:"email,omitempty"`
	Specialties  *string     `json:"specialties,omitempty"`
	WorkingHours *string     `json:"workingHours,omitempty"`
	HireDate     *types.Date `json:"hireDate,omitempty"`
	IsActive     bool        `json:"isActive"`
	Version      int         `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateBarberRequest) ApplyTo(b *barber.Barber) {
	b.Name = r.Name
	b.Phone = r.Phone
	b.Email = r.Email
	b.Specialties = r.Specialties
	b.WorkingHours = r.WorkingHours
	b.HireDate = r.HireDate
	b.IsActive = r.IsActive
	b.Version = r.Version
}

// --- Response DTOs ---

// BarberResponse is the response body for a barber.
type BarberResponse struct {
	CatalogResponse
	Phone        *string     `json:"phone,omitempty"`
	Email        *string     `json:"email,omitempty"`
	Specialties  *string     `json:"specialties,omitempty"`
	WorkingHours *string     `json:"workingHours,omitempty"`
	HireDate     *types.Date `json:"hireDate,omitempty"`
}

// FromBarber creates response DTO from domain entity.
func FromBarber(b *barber.Barber) *BarberResponse {
	return &BarberResponse{
		CatalogResponse: FromCatalog(b.Catalog),
		Phone:           b.Phone,
		Email:           b.Email,
		Specialties:     b.Specialties,
		WorkingHours:    b.WorkingHours,
		HireDate:        b.HireDate,
	}
}
