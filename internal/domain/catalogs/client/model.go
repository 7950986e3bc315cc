// Package client provides the Client catalog: the shop's customer base.
package client

import (
	"context"
	"regexp"

	"barberdesk/internal/core/apperror"
	"barberdesk/internal/core/entity"
	"barberdesk/internal/core/types"
)

// Client represents a customer of the shop.
type Client struct {
	entity.Catalog

	Phone *string `db:"phone" json:"phone,omitempty"`
	Email *string `db:"email" json:"email,omitempty"`

	// BirthDate is used for birthday promotions; optional.
	BirthDate *types.Date `db:"birth_date" json:"birthDate,omitempty"`

	Notes *string `db:"notes" json:"notes,omitempty"`
}

// NewClient creates a new Client with required fields.
func NewClient(code, name string) *Client {
	return &Client{
		Catalog: entity.NewCatalog(code, name),
	}
}

// Validate implements entity.Validatable interface.
func (c *Client) Validate(ctx context.Context) error {
	if err := c.Catalog.Validate(ctx); err != nil {
		return err
	}

	if c.Email != nil && *c.Email != "" && !isValidEmail(*c.Email) {
		return apperror.NewValidation("invalid email address").
			WithDetail("field", "email").
			WithDetail("value", *c.Email)
	}

	return nil
}

func isValidEmail(email string) bool {
	return regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`).MatchString(email)
}
