package common

import (
	"errors"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// MinTokenKeyLength is the shortest signing key the issuer accepts. The key
// is the sole trust boundary: whoever holds it can mint valid tokens.
const MinTokenKeyLength = 32

// Claims represents the data stored in a session token: the registered
// subject claim holds the user id as a string, unique_name holds the
// username. No expiry is set and none is required by Verify.
type Claims struct {
	UniqueName string `json:"unique_name"`
	jwt.RegisteredClaims
}

// UserID parses the subject claim back into a user id.
func (c *Claims) UserID() (uint, error) {
	id, err := strconv.ParseUint(c.Subject, 10, 64)
	if err != nil {
		return 0, errors.New("invalid subject claim")
	}
	return uint(id), nil
}

// TokenIssuer signs and verifies session tokens with a symmetric key.
type TokenIssuer struct {
	key []byte
}

func NewTokenIssuer(key []byte) (*TokenIssuer, error) {
	if len(key) < MinTokenKeyLength {
		return nil, errors.New("token signing key must be at least 32 bytes")
	}
	return &TokenIssuer{key: key}, nil
}

func (t *TokenIssuer) CreateToken(userID uint, username string) (string, error) {
	claims := &Claims{
		UniqueName: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: strconv.FormatUint(uint64(userID), 10),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(t.key)
}

// Verify checks the signature and returns the claims. Tokens without an
// expiry claim are accepted; issuer and audience are not checked.
func (t *TokenIssuer) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return t.key, nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}
