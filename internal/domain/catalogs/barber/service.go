package barber

import (
	"context"

	"barberdesk/internal/core/id"
	"barberdesk/internal/core/tx"
	"barberdesk/internal/domain"
	"barberdesk/pkg/logger"
)

// Service provides business logic for the Barber catalog.
type Service struct {
	*domain.CatalogService[*Barber]
	repo      Repository
	txManager tx.Manager
}

// NewService creates a new Barber service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Barber]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "barber",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
		txManager:      txManager,
	}

	base.Hooks().On(domain.BeforeCreate, svc.prepareForCreate)

	return svc
}

func (s *Service) prepareForCreate(ctx context.Context, b *Barber) error {
	if b.Code == "" {
		b.Code = domain.GenerateCode("BB", b.ID)
	}
	return nil
}

// SetActive activates or deactivates a barber. Deactivation hides the
// barber from new appointments and sales but keeps every policy,
// calculation and adjustment on record.
func (s *Service) SetActive(ctx context.Context, barberID id.ID, active bool) error {
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.SetActive(ctx, barberID, active)
	})
	if err != nil {
		return err
	}
	logger.Info(ctx, "barber active flag changed", "barber_id", barberID.String(), "active", active)
	return nil
}
