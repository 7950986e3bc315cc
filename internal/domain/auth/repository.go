package auth

import (
	"context"

	"barberdesk/internal/core/id"
)

// Repository defines the interface for User persistence.
type Repository interface {
	Create(ctx context.Context, user *User) error

	GetByID(ctx context.Context, userID id.ID) (*User, error)

	// GetByEmail returns the user or NotFound. Lookup is case-insensitive.
	GetByEmail(ctx context.Context, email string) (*User, error)

	Update(ctx context.Context, user *User) error
}
