package services

import (
	"testing"

	"github.com/TaniaW777/zenfit/models"
	"github.com/TaniaW777/zenfit/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) (*AuthService, *TokenService) {
	t.Helper()
	tokens := NewTokenService("test-secret", TokenTTL)
	return NewAuthService(newTestDB(t), utils.NewPasswordHasher(4), tokens), tokens
}

func TestRegisterIssuesResolvableToken(t *testing.T) {
	svc, tokens := newAuthService(t)

	user, token, err := svc.Register("a@b.com", "secret", "Ada", "Lovelace")
	require.NoError(t, err)
	require.NotZero(t, user.ID)

	resolved, ok := tokens.Verify(token)
	assert.True(t, ok)
	assert.Equal(t, user.ID, resolved)

	assert.NotEqual(t, "secret", user.PasswordHash)
	assert.NotContains(t, user.PasswordHash, "secret")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAuthService(t)

	_, _, err := svc.Register("a@b.com", "secret", "", "")
	require.NoError(t, err)

	_, _, err = svc.Register("a@b.com", "other", "", "")
	assert.ErrorIs(t, err, ErrEmailTaken)

	var count int64
	require.NoError(t, svc.db.Model(&models.User{}).Where("email = ?", "a@b.com").Count(&count).Error)
	assert.Equal(t, int64(1), count, "no duplicate row may be created")
}

func TestLogin(t *testing.T) {
	svc, _ := newAuthService(t)

	registered, _, err := svc.Register("a@b.com", "secret", "", "")
	require.NoError(t, err)

	user, token, err := svc.Login("a@b.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	assert.NotEmpty(t, token)
}

func TestLoginRejections(t *testing.T) {
	svc, _ := newAuthService(t)

	_, _, err := svc.Register("a@b.com", "secret", "", "")
	require.NoError(t, err)

	_, _, err = svc.Login("a@b.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login("nobody@b.com", "secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials, "unknown email must read the same as a bad password")
}
