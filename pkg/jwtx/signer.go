package jwtx

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// MinSecretLength is the minimum HMAC secret size we accept. Anything
// shorter undercuts the signature strength of HS256.
const MinSecretLength = 32

// Signer is our interface for anything that can sign token claims.
type Signer interface {
	Alg() string
	Sign(Claims) (string, error)
}

// HS256Signer signs tokens with HMAC-SHA-256 over a shared secret. The
// secret is fixed at construction and never rotated in-process.
type HS256Signer struct {
	key []byte
}

// NewSignerHS256 creates an HS256 signer from raw secret bytes.
func NewSignerHS256(secret []byte) (*HS256Signer, error) {
	if len(secret) < MinSecretLength {
		return nil, errors.New("jwtx: HS256 secret must be at least 32 bytes")
	}
	return &HS256Signer{key: secret}, nil
}

func (s *HS256Signer) Alg() string { return jwt.SigningMethodHS256.Alg() }

// Sign takes claims and turns them into a signed compact JWT string.
func (s *HS256Signer) Sign(claims Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.key)
}
