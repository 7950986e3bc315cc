package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	svc := NewJWTService(DefaultJWTConfig("test-secret"))

	token, expiresAt, err := svc.GenerateAccessToken("user-1", "ana@shop.test", "Ana", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.True(t, expiresAt.After(time.Now()))

	uc, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", uc.UserID)
	assert.Equal(t, "ana@shop.test", uc.Email)
	assert.Equal(t, "Ana", uc.Name)
	assert.Equal(t, "admin", uc.Role)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	issuer := NewJWTService(DefaultJWTConfig("secret-a"))
	verifier := NewJWTService(DefaultJWTConfig("secret-b"))

	token, _, err := issuer.GenerateAccessToken("user-1", "ana@shop.test", "Ana", "admin")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	require.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := NewJWTService(DefaultJWTConfig("test-secret"))
	_, err := svc.ValidateToken("not.a.token")
	require.Error(t, err)
}

func TestUserPassword(t *testing.T) {
	u, err := NewUser("Ana", "ana@shop.test", "s3cret!", "admin")
	require.NoError(t, err)

	assert.True(t, u.CheckPassword("s3cret!"))
	assert.False(t, u.CheckPassword("wrong"))

	_, err = NewUser("Bo", "bo@shop.test", "1234", "barber")
	require.Error(t, err, "short passwords rejected")
}
