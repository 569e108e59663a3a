package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"ecommerce-api/internal/apperr"
	"ecommerce-api/internal/models"
)

func testUser() *models.User {
	return &models.User{
		ID:    "user-123",
		Email: "user@example.com",
		Role:  models.RoleAdmin,
	}
}

func TestTokenIssuer_RoundTrip(t *testing.T) {
	t.Parallel()

	issuer := NewTokenIssuer("super-secret", time.Hour)
	tok, err := issuer.Issue(testUser())
	require.NoError(t, err)

	claims, err := issuer.Verify(tok)
	require.NoError(t, err)
	require.Equal(t, "user-123", claims.UserID)
	require.Equal(t, "user@example.com", claims.Email)
	require.Equal(t, models.RoleAdmin, claims.Role)
}

func TestTokenIssuer_Expired(t *testing.T) {
	t.Parallel()

	issuer := NewTokenIssuer("super-secret", -time.Minute)
	tok, err := issuer.Issue(testUser())
	require.NoError(t, err)

	_, err = issuer.Verify(tok)
	require.ErrorIs(t, err, apperr.ErrInvalidToken)
}

func TestTokenIssuer_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewTokenIssuer("right-secret", time.Hour).Issue(testUser())
	require.NoError(t, err)

	_, err = NewTokenIssuer("wrong-secret", time.Hour).Verify(tok)
	require.ErrorIs(t, err, apperr.ErrInvalidToken)
}

func TestTokenIssuer_Malformed(t *testing.T) {
	t.Parallel()

	_, err := NewTokenIssuer("k", time.Hour).Verify("not.a.jwt")
	require.ErrorIs(t, err, apperr.ErrInvalidToken)
}
