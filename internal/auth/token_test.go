package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func testManager() *Manager {
	return NewManager(testSecret, 15*time.Minute)
}

func TestIssueToken_AndParse_OK(t *testing.T) {
	m := testManager()
	userID := uuid.NewString()

	token, err := m.IssueToken(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsedID, err := m.ParseToken(token)
	require.NoError(t, err)
	require.Equal(t, userID, parsedID)
}

func TestParseToken_WrongAlg(t *testing.T) {
	m := testManager()
	userID := uuid.NewString()
	now := time.Now().UTC()

	claims := jwt.MapClaims{
		"uid": userID,
		"sub": userID,
		"exp": now.Add(15 * time.Minute).Unix(),
		"iat": now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = m.ParseToken(signed)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_WrongSecret(t *testing.T) {
	m := testManager()
	other := NewManager("another-secret", 15*time.Minute)

	token, err := other.IssueToken(uuid.NewString())
	require.NoError(t, err)

	_, err = m.ParseToken(token)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_Expired(t *testing.T) {
	m := NewManager(testSecret, -time.Hour)

	token, err := m.IssueToken(uuid.NewString())
	require.NoError(t, err)

	_, err = m.ParseToken(token)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestParseToken_MissingUID(t *testing.T) {
	m := testManager()
	now := time.Now().UTC()

	claims := jwt.MapClaims{
		"exp": now.Add(15 * time.Minute).Unix(),
		"iat": now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = m.ParseToken(signed)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_Garbage(t *testing.T) {
	m := testManager()

	_, err := m.ParseToken("not-a-jwt")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidToken)
}
