package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	token, expiresAt, err := tm.Issue()
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := tm.Parse(token)
	require.NoError(t, err)
	assert.NotEmpty(t, claims.ID)
	assert.Equal(t, "admin", claims.Subject)
}

func TestTokenUniqueIDs(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	first, _, err := tm.Issue()
	require.NoError(t, err)
	second, _, err := tm.Issue()
	require.NoError(t, err)

	a, err := tm.Parse(first)
	require.NoError(t, err)
	b, err := tm.Parse(second)
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, _, err := NewTokenManager("secret-a", time.Hour).Issue()
	require.NoError(t, err)

	_, err = NewTokenManager("secret-b", time.Hour).Parse(token)
	assert.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	for _, token := range []string{"", "true", "not.a.jwt"} {
		_, err := tm.Parse(token)
		assert.Error(t, err, "token %q", token)
	}
}

func TestParseRejectsExpired(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Millisecond)
	token, _, err := tm.Issue()
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	_, err = tm.Parse(token)
	assert.Error(t, err)
}
