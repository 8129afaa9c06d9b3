package common

import (
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTokenIssuer_KeyLength(t *testing.T) {
	_, err := NewTokenIssuer([]byte("too-short"))
	require.Error(t, err)

	issuer, err := NewTokenIssuer([]byte(strings.Repeat("k", 200)))
	require.NoError(t, err)
	require.NotNil(t, issuer)
}

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer, err := NewTokenIssuer([]byte(strings.Repeat("k", 200)))
	require.NoError(t, err)

	token, err := issuer.CreateToken(42, "alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, "alice", claims.UniqueName)
	// tokens carry no expiry and must still verify
	assert.Nil(t, claims.ExpiresAt)

	id, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)
}

func TestTokenIssuer_RejectsForeignSignature(t *testing.T) {
	issuer, err := NewTokenIssuer([]byte(strings.Repeat("a", 64)))
	require.NoError(t, err)
	other, err := NewTokenIssuer([]byte(strings.Repeat("b", 64)))
	require.NoError(t, err)

	token, err := other.CreateToken(1, "mallory")
	require.NoError(t, err)

	_, err = issuer.Verify(token)
	require.Error(t, err)
}

func TestTokenIssuer_RejectsUnexpectedMethod(t *testing.T) {
	issuer, err := NewTokenIssuer([]byte(strings.Repeat("k", 64)))
	require.NoError(t, err)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
		UniqueName:       "mallory",
		RegisteredClaims: jwt.RegisteredClaims{Subject: "1"},
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = issuer.Verify(token)
	require.Error(t, err)
}
