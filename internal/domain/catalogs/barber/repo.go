package barber

import (
	"context"

	"barberdesk/internal/core/id"
	"barberdesk/internal/domain"
)

// Repository defines the interface for Barber persistence.
type Repository interface {
	domain.CatalogRepository[*Barber]

	// SetActive flips the active flag without touching other fields.
	SetActive(ctx context.Context, id id.ID, active bool) error
}
