package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := IssueToken("alice@example.com", "admin")
	require.NoError(t, err)

	email, role, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", email)
	assert.Equal(t, "admin", role)
}

func TestParseTokenWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := IssueToken("alice@example.com", "user")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "another-secret")
	_, _, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenExpired(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	claims := jwt.MapClaims{
		"email": "alice@example.com",
		"role":  "user",
		"exp":   time.Now().Add(-time.Minute).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, _, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	_, _, err := ParseToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIdentityScope(t *testing.T) {
	user := UserIdentity("alice@example.com")
	assert.Equal(t, IdentityUser, user.Kind)

	session := SessionIdentity("sess-1")
	assert.Equal(t, IdentitySession, session.Kind)

	entry := user.NewCartEntry(7, 2)
	require.NotNil(t, entry.UserEmail)
	assert.Equal(t, "alice@example.com", *entry.UserEmail)
	assert.Nil(t, entry.SessionToken)
	assert.Equal(t, uint(7), entry.ProductID)
	assert.Equal(t, 2, entry.Quantity)

	entry = session.NewCartEntry(7, 2)
	require.NotNil(t, entry.SessionToken)
	assert.Equal(t, "sess-1", *entry.SessionToken)
	assert.Nil(t, entry.UserEmail)
}
