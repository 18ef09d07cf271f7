// Package token issues and validates the signed bearer credentials the service
// hands out at login. Tokens are JWT compact form (claims and MAC in separate
// base64url segments) signed with HS256 under a single process-wide secret.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/openboard/board-service/internal/core/domain"
)

// Internal validation failures. The resolver collapses all of these into
// domain.ErrTokenNotFound before they reach a caller; they exist so logs and
// metrics can tell which check rejected a credential.
var (
	ErrMalformed        = errors.New("malformed token")
	ErrInvalidSignature = errors.New("invalid token signature")
	ErrExpired          = errors.New("token expired")
)

// Claims is the payload embedded in every issued token.
type Claims struct {
	Role domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// Codec issues and validates tokens. It keeps no state between calls beyond
// the read-only secret, so a single Codec is safe for concurrent use.
type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewCodec returns a Codec signing with secret and issuing tokens valid for
// ttl. A non-positive ttl falls back to 24h.
func NewCodec(secret []byte, ttl time.Duration) *Codec {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Codec{secret: secret, ttl: ttl, now: time.Now}
}

// WithClock replaces the codec's time source. Intended for tests.
func (c *Codec) WithClock(now func() time.Time) *Codec {
	c.now = now
	return c
}

// Issue creates a signed token for subject with the given role, valid from now
// until now+ttl.
func (c *Codec) Issue(subject string, role domain.Role) (string, error) {
	now := c.now().UTC()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

// Validate checks raw and returns its claims. Checks run in a fixed order and
// stop at the first failure: structure (ErrMalformed), MAC (ErrInvalidSignature),
// then expiry (ErrExpired). A token presented at exactly its expiry instant is
// still accepted; any later instant is rejected.
func (c *Codec) Validate(raw string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	}, jwt.WithoutClaimsValidation())
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrInvalidSignature
		default:
			return nil, ErrMalformed
		}
	}

	// The library's own validator rejects at the exact expiry instant, so the
	// boundary check is done here against the injected clock.
	if claims.ExpiresAt == nil || c.now().After(claims.ExpiresAt.Time) {
		return nil, ErrExpired
	}

	return claims, nil
}
