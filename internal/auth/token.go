package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Signer mints signed access tokens at login. A minted token is opaque
// from then on: validation never parses it back, the session row looked
// up by exact token match is the sole source of truth.
type Signer struct {
	secret []byte
}

// NewSigner builds a Signer from the configured secret.
func NewSigner(secret string) *Signer {
	return &Signer{secret: []byte(secret)}
}

// Mint produces a signed token for the given user uuid and lifetime.
// The jti claim carries a fresh uuid so repeated sign-ins within the
// same second still get distinct tokens.
func (s *Signer) Mint(userUUID string, issuedAt, expiresAt time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   userUUID,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
