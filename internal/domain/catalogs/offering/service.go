package offering

import (
	"context"

	"barberdesk/internal/core/tx"
	"barberdesk/internal/domain"
)

// Service provides business logic for the Offering catalog.
type Service struct {
	*domain.CatalogService[*Offering]
	repo Repository
}

// NewService creates a new Offering service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Offering]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "service",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
	}

	base.Hooks().On(domain.BeforeCreate, svc.prepareForCreate)

	return svc
}

func (s *Service) prepareForCreate(ctx context.Context, o *Offering) error {
	if o.Code == "" {
		o.Code = domain.GenerateCode("SV", o.ID)
	}
	return nil
}
