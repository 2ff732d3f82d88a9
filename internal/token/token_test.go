package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_IssueAndVerify(t *testing.T) {
	t.Parallel()
	m := NewManager("access-secret", "refresh-secret")

	pair, err := m.Issue("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, pair.Access)
	require.NotEmpty(t, pair.Refresh)
	assert.NotEqual(t, pair.Access, pair.Refresh)

	userID, err := m.Verify(pair.Access, KindAccess)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)

	userID, err = m.Verify(pair.Refresh, KindRefresh)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestManager_KindsAreNotInterchangeable(t *testing.T) {
	t.Parallel()
	m := NewManager("access-secret", "refresh-secret")

	pair, err := m.Issue("user-123")
	require.NoError(t, err)

	_, err = m.Verify(pair.Access, KindRefresh)
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = m.Verify(pair.Refresh, KindAccess)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestManager_Expired(t *testing.T) {
	t.Parallel()
	m := NewManager("access-secret", "refresh-secret")

	// hand-craft an already expired token with the access secret
	claims := jwt.MapClaims{
		"sub":  "user-123",
		"kind": string(KindAccess),
		"iss":  "inkwell-api",
		"iat":  time.Now().Add(-time.Hour).Unix(),
		"exp":  time.Now().Add(-time.Minute).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("access-secret"))
	require.NoError(t, err)

	_, err = m.Verify(signed, KindAccess)
	assert.ErrorIs(t, err, ErrExpired)
}

func TestManager_Malformed(t *testing.T) {
	t.Parallel()
	m := NewManager("access-secret", "refresh-secret")

	cases := map[string]string{
		"garbage":        "not-a-jwt",
		"empty":          "",
		"wrong sections": "a.b",
	}
	for name, tokenString := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := m.Verify(tokenString, KindAccess)
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestManager_WrongSecretRejected(t *testing.T) {
	t.Parallel()
	m := NewManager("access-secret", "refresh-secret")
	other := NewManager("different-access", "different-refresh")

	pair, err := other.Issue("user-123")
	require.NoError(t, err)

	_, err = m.Verify(pair.Access, KindAccess)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestManager_WrongIssuerRejected(t *testing.T) {
	t.Parallel()
	m := NewManager("access-secret", "refresh-secret")

	claims := jwt.MapClaims{
		"sub":  "user-123",
		"kind": string(KindAccess),
		"iss":  "someone-else",
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("access-secret"))
	require.NoError(t, err)

	_, err = m.Verify(signed, KindAccess)
	assert.ErrorIs(t, err, ErrMalformed)
}
