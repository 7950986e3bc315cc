package offering

import (
	"barberdesk/internal/domain"
)

// Repository defines the interface for Offering persistence.
type Repository interface {
	domain.CatalogRepository[*Offering]
}
