package client

import (
	"context"

	"barberdesk/internal/core/tx"
	"barberdesk/internal/domain"
)

// Service provides business logic for the Client catalog.
// Uses composition with domain.CatalogService for common CRUD operations.
type Service struct {
	*domain.CatalogService[*Client]
	repo Repository
}

// NewService creates a new Client service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Client]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "client",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
	}

	base.Hooks().On(domain.BeforeCreate, svc.prepareForCreate)

	return svc
}

// prepareForCreate assigns a code when the caller did not provide one.
func (s *Service) prepareForCreate(ctx context.Context, c *Client) error {
	if c.Code == "" {
		c.Code = domain.GenerateCode("CL", c.ID)
	}
	return nil
}
