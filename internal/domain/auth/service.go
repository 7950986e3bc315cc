package auth

import (
	"context"
	"time"

	"barberdesk/internal/core/apperror"
	appctx "barberdesk/internal/core/context"
	"barberdesk/internal/core/id"
	"barberdesk/pkg/logger"
)

// Service handles sign-in and identity lookups.
type Service struct {
	repo Repository
	jwt  *JWTService
}

// NewService creates an auth Service.
func NewService(repo Repository, jwt *JWTService) *Service {
	return &Service{repo: repo, jwt: jwt}
}

// LoginResult is the successful sign-in payload.
type LoginResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      *User     `json:"user"`
}

// Login verifies credentials and issues an access token. Wrong email
// and wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewUnauthorized("invalid credentials")
		}
		return nil, err
	}
	if !user.IsActive || !user.CheckPassword(password) {
		return nil, apperror.NewUnauthorized("invalid credentials")
	}

	token, expiresAt, err := s.jwt.GenerateAccessToken(user.ID.String(), user.Email, user.Name, user.Role)
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	logger.Info(ctx, "user signed in", "user_id", user.ID.String(), "role", user.Role)

	return &LoginResult{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

// CurrentUser loads the account behind the authenticated context.
func (s *Service) CurrentUser(ctx context.Context) (*User, error) {
	uc := appctx.GetUser(ctx)
	if uc == nil {
		return nil, apperror.NewUnauthorized("not authenticated")
	}
	userID, err := id.Parse(uc.UserID)
	if err != nil {
		return nil, apperror.NewUnauthorized("invalid user identity")
	}
	return s.repo.GetByID(ctx, userID)
}
