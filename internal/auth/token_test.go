package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123"

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, time.Hour)
	now := time.Now()

	token, expiresAt, err := issuer.Issue("7c1f8a0e-2b7e-4a55-9d8e-0b7f2f4c1a11", 42, now)
	require.NoError(t, err)
	assert.WithinDuration(t, now.Add(time.Hour), expiresAt, time.Second)

	claims, err := issuer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "7c1f8a0e-2b7e-4a55-9d8e-0b7f2f4c1a11", claims.SessionKey)

	id, err := claims.AccountID()
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestTokenIssuer_Parse_Rejects(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, time.Hour)

	expired, _, err := issuer.Issue("session", 1, time.Now().Add(-2*time.Hour))
	require.NoError(t, err)

	otherSecret, _, err := NewTokenIssuer("another-secret-value", time.Hour).Issue("session", 1, time.Now())
	require.NoError(t, err)

	wrongMethod, err := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{
		SessionKey: "session",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	missingSession, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	badSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		SessionKey: "session",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "abc",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "Expired token", token: expired},
		{name: "Signed with another secret", token: otherSecret},
		{name: "Wrong signing method", token: wrongMethod},
		{name: "Missing session claim", token: missingSession},
		{name: "Non-numeric subject", token: badSubject},
		{name: "Garbage", token: "not-a-jwt"},
		{name: "Empty", token: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := issuer.Parse(tt.token)

			assert.ErrorIs(t, err, ErrInvalidToken)
			assert.Nil(t, claims)
		})
	}
}
