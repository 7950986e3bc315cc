// Package auth_repo provides the PostgreSQL implementation of user
// persistence.
package auth_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"barberdesk/internal/domain/auth"
	"barberdesk/internal/infrastructure/storage/postgres"
	"barberdesk/internal/infrastructure/storage/postgres/document_repo"
)

const userTable = "users"

// UserRepo implements auth.Repository.
type UserRepo struct {
	*document_repo.BaseDocumentRepo[*auth.User]
}

// NewUserRepo creates a new user repository.
func NewUserRepo(txm *postgres.TxManager) *UserRepo {
	return &UserRepo{
		BaseDocumentRepo: document_repo.NewBaseDocumentRepo[*auth.User](
			txm,
			userTable,
			postgres.ExtractDBColumns[auth.User](),
			func() *auth.User { return &auth.User{} },
		),
	}
}

// GetByEmail retrieves a user by email, case-insensitive.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*auth.User, error) {
	q := r.BaseSelect().
		Where(squirrel.Expr("lower(email) = lower(?)", email)).
		Where(squirrel.Eq{"deletion_mark": false}).
		Limit(1)

	return r.FindOne(ctx, q)
}

var _ auth.Repository = (*UserRepo)(nil)
