package auth

import (
	"context"
	"regexp"

	"golang.org/x/crypto/bcrypt"

	"barberdesk/internal/core/apperror"
	appctx "barberdesk/internal/core/context"
	"barberdesk/internal/core/entity"
)

// User is an account that can sign in to the back office.
type User struct {
	entity.BaseDocument

	Name         string `db:"name" json:"name"`
	Email        string `db:"email" json:"email"`
	PasswordHash string `db:"password_hash" json:"-"`
	Role         string `db:"role" json:"role"`
	IsActive     bool   `db:"is_active" json:"isActive"`
}

// NewUser creates an active user with a bcrypt-hashed password.
func NewUser(name, email, password, role string) (*User, error) {
	u := &User{
		BaseDocument: entity.NewBaseDocument(),
		Name:         name,
		Email:        email,
		Role:         role,
		IsActive:     true,
	}
	if err := u.SetPassword(password); err != nil {
		return nil, err
	}
	return u, nil
}

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Validate implements entity.Validatable.
func (u *User) Validate(ctx context.Context) error {
	if u.Name == "" {
		return apperror.NewValidation("name is required").WithDetail("field", "name")
	}
	if !emailRe.MatchString(u.Email) {
		return apperror.NewValidation("invalid email address").WithDetail("field", "email")
	}
	switch u.Role {
	case appctx.RoleAdmin, appctx.RoleBarber, appctx.RoleReception:
	default:
		return apperror.NewValidation("unknown role").WithDetail("role", u.Role)
	}
	if u.PasswordHash == "" {
		return apperror.NewValidation("password is required").WithDetail("field", "password")
	}
	return nil
}

// SetPassword hashes and stores the password.
func (u *User) SetPassword(password string) error {
	if len(password) < 6 {
		return apperror.NewValidation("password must be at least 6 characters").
			WithDetail("field", "password")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword compares the password against the stored hash.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}
