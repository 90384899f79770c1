package authtoken

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newManager(accessTTL, refreshTTL time.Duration) *Manager {
	return NewManager(Config{
		SecretKey:  "unit-test-secret",
		AccessTTL:  accessTTL,
		RefreshTTL: refreshTTL,
		Issuer:     "todo-manager-test",
	})
}

func TestManager_AccessTokenRoundTrip(t *testing.T) {
	m := newManager(time.Minute, time.Hour)

	token, err := m.GenerateAccessToken(7, "alice")
	require.NoError(t, err)

	claims, err := m.ValidateAccessToken(token)
	require.NoError(t, err)
	require.Equal(t, uint64(7), claims.UserID)
	require.Equal(t, "alice", claims.Username)
	require.Equal(t, TokenTypeAccess, claims.TokenType)
	require.Equal(t, "todo-manager-test", claims.Issuer)
	require.Equal(t, "7", claims.Subject)
}

func TestManager_RefreshTokenRoundTrip(t *testing.T) {
	m := newManager(time.Minute, time.Hour)

	token, err := m.GenerateRefreshToken(7, "alice")
	require.NoError(t, err)

	claims, err := m.ValidateRefreshToken(token)
	require.NoError(t, err)
	require.Equal(t, TokenTypeRefresh, claims.TokenType)
}

func TestManager_TokenTypeMismatch(t *testing.T) {
	m := newManager(time.Minute, time.Hour)

	access, err := m.GenerateAccessToken(7, "alice")
	require.NoError(t, err)
	refresh, err := m.GenerateRefreshToken(7, "alice")
	require.NoError(t, err)

	_, err = m.ValidateAccessToken(refresh)
	require.ErrorIs(t, err, ErrInvalidToken)

	_, err = m.ValidateRefreshToken(access)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_ValidateToken_AcceptsEitherType(t *testing.T) {
	m := newManager(time.Minute, time.Hour)

	access, err := m.GenerateAccessToken(7, "alice")
	require.NoError(t, err)
	refresh, err := m.GenerateRefreshToken(7, "alice")
	require.NoError(t, err)

	_, err = m.ValidateToken(access)
	require.NoError(t, err)
	_, err = m.ValidateToken(refresh)
	require.NoError(t, err)
}

func TestManager_ExpiredToken(t *testing.T) {
	m := newManager(-time.Minute, time.Hour)

	token, err := m.GenerateAccessToken(7, "alice")
	require.NoError(t, err)

	_, err = m.ValidateToken(token)
	require.ErrorIs(t, err, ErrExpiredToken)
}

func TestManager_WrongSecret(t *testing.T) {
	token, err := newManager(time.Minute, time.Hour).GenerateAccessToken(7, "alice")
	require.NoError(t, err)

	other := NewManager(Config{SecretKey: "another-secret", AccessTTL: time.Minute, RefreshTTL: time.Hour})
	_, err = other.ValidateToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_Garbage(t *testing.T) {
	m := newManager(time.Minute, time.Hour)

	_, err := m.ValidateToken("not.a.jwt")
	require.ErrorIs(t, err, ErrInvalidToken)
}
