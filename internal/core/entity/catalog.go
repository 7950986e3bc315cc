package entity

import (
	"context"

	"barberdesk/internal/core/apperror"
)

// Catalog is the base type for reference data.
// Examples: Clients, Barbers, Services, Products.
type Catalog struct {
	BaseEntity

	// Code is a human-readable identifier (unique)
	Code string `db:"code" json:"code"`

	// Name is the display name
	Name string `db:"name" json:"name"`

	// IsActive marks the record usable in new documents.
	// Deactivation never deletes history.
	IsActive bool `db:"is_active" json:"isActive"`
}

// NewCatalog creates a new Catalog with generated ID.
func NewCatalog(code, name string) Catalog {
	return Catalog{
		BaseEntity: NewBaseEntity(),
		Code:       code,
		Name:       name,
		IsActive:   true,
	}
}

// Validate implements Validatable interface.
func (c *Catalog) Validate(ctx context.Context) error {
	if c.Name == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}

	// Code can be auto-generated, so it's optional at creation
	// but required at save time

	return nil
}

// Activate marks the record usable.
func (c *Catalog) Activate() {
	c.IsActive = true
}

// Deactivate hides the record from new documents without deleting it.
func (c *Catalog) Deactivate() {
	c.IsActive = false
}
