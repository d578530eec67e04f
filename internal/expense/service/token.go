package service

import (
	"errors"
	"time"

	"github.com/outlay-labs/outlay/pkg/jwtx"
)

// ErrInvalidToken is the single caller-visible failure mode for token
// verification. Signature, expiry and structural failures all collapse into
// it so the response never leaks which check tripped.
var ErrInvalidToken = errors.New("invalid_token")

// TokenService issues and verifies stateless bearer tokens. There is no
// server-side session state; everything a request needs is inside the token.
type TokenService struct {
	Signer    jwtx.Signer
	Verifier  jwtx.Verifier
	Issuer    string
	AccessTTL time.Duration
}

// TTL returns the configured access token lifetime, falling back to the
// package default when unset.
func (s *TokenService) TTL() time.Duration {
	if s.AccessTTL > 0 {
		return s.AccessTTL
	}
	return jwtx.DefaultAccessTokenTTL
}

// Issue signs a fresh access token for subject, valid from now.
func (s *TokenService) Issue(subject string, now time.Time) (string, error) {
	claims := jwtx.NewAccessClaims(subject, s.Issuer, s.TTL(), now)
	return s.Signer.Sign(claims)
}

// Verify validates token and returns its subject. Every failure mode maps to
// ErrInvalidToken.
func (s *TokenService) Verify(token string) (string, error) {
	claims, err := s.Verifier.Verify(token)
	if err != nil {
		return "", ErrInvalidToken
	}

	if claims.Subject == "" {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}
