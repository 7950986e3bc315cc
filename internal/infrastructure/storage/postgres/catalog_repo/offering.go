package catalog_repo

import (
	"barberdesk/internal/domain/catalogs/offering"
	"barberdesk/internal/infrastructure/storage/postgres"
)

const offeringTable = "cat_services"

// OfferingRepo implements offering.Repository.
type OfferingRepo struct {
	*BaseCatalogRepo[*offering.Offering]
}

// NewOfferingRepo creates a new service-catalog repository.
func NewOfferingRepo(txm *postgres.TxManager) *OfferingRepo {
	return &OfferingRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[*offering.Offering](
			txm,
			offeringTable,
			postgres.ExtractDBColumns[offering.Offering](),
			func() *offering.Offering { return &offering.Offering{} },
		),
	}
}

var _ offering.Repository = (*OfferingRepo)(nil)
