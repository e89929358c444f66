package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gahette/judo-library/internal/models"
)

func testUser() *models.User {
	return &models.User{
		ID:        7,
		LastName:  "Kano",
		FirstName: "Jigoro",
		Pseudo:    "shihan",
		Email:     "jigoro@kodokan.jp",
	}
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	tokens := NewTokenService("test-secret", time.Hour)

	token, err := tokens.Issue(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.ID)
	assert.Equal(t, "Kano", claims.LastName)
	assert.Equal(t, "Jigoro", claims.FirstName)
	assert.Equal(t, "jigoro@kodokan.jp", claims.Email)
	require.NotNil(t, claims.IssuedAt)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestTokenService_Expired(t *testing.T) {
	tokens := NewTokenService("test-secret", -time.Minute)

	token, err := tokens.Issue(testUser())
	require.NoError(t, err)

	_, err = tokens.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_WrongSecret(t *testing.T) {
	issued, err := NewTokenService("secret-a", time.Hour).Issue(testUser())
	require.NoError(t, err)

	_, err = NewTokenService("secret-b", time.Hour).Verify(issued)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_Malformed(t *testing.T) {
	tokens := NewTokenService("test-secret", time.Hour)

	for _, bogus := range []string{"", "garbage", "a.b", "a.b.c"} {
		_, err := tokens.Verify(bogus)
		// Every failure collapses to the same error so callers cannot tell
		// a bad signature from a bad shape from an expired token.
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}
