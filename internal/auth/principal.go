// Package auth resolves bearer credentials into principals and decides what a
// principal may do to an owned resource.
package auth

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/openboard/board-service/internal/api/metrics"
	"github.com/openboard/board-service/internal/auth/token"
	"github.com/openboard/board-service/internal/core/domain"
)

const bearerPrefix = "Bearer "

// Principal is the authenticated identity for one request. It can only be
// built from claims that passed signature and expiry checks and whose subject
// still exists in the user store.
type Principal struct {
	Username string
	Role     domain.Role
}

// UserLookup is the slice of the user repository the resolver needs.
type UserLookup interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}

// Resolver turns a raw Authorization header value into a Principal.
type Resolver struct {
	codec *token.Codec
	users UserLookup
	log   zerolog.Logger
}

func NewResolver(codec *token.Codec, users UserLookup, log zerolog.Logger) *Resolver {
	return &Resolver{codec: codec, users: users, log: log}
}

// Resolve validates rawHeader and confirms its subject against the user store.
//
// Every codec-level failure (missing, malformed, bad signature, expired) is
// reported as domain.ErrTokenNotFound; which check actually rejected the token
// is recorded in the debug log and metrics only, so callers cannot probe which
// part of a forged token failed.
//
// The role on the returned Principal comes from the freshly looked-up user,
// not from the claims: a role change in storage takes effect on the next
// request even while the old token is still within its TTL.
func (r *Resolver) Resolve(ctx context.Context, rawHeader string) (*Principal, error) {
	if rawHeader == "" {
		metrics.TokenRejectionsTotal.WithLabelValues("missing").Inc()
		return nil, domain.ErrTokenNotFound
	}

	raw := rawHeader
	if len(raw) >= len(bearerPrefix) && strings.EqualFold(raw[:len(bearerPrefix)], bearerPrefix) {
		raw = raw[len(bearerPrefix):]
	}

	claims, err := r.codec.Validate(raw)
	if err != nil {
		reason := rejectionReason(err)
		metrics.TokenRejectionsTotal.WithLabelValues(reason).Inc()
		r.log.Debug().Str("reason", reason).Msg("token rejected")
		return nil, domain.ErrTokenNotFound
	}

	user, err := r.users.FindByUsername(ctx, claims.Subject)
	if err != nil {
		return nil, err
	}

	return &Principal{Username: user.Username, Role: user.Role}, nil
}

func rejectionReason(err error) string {
	switch err {
	case token.ErrInvalidSignature:
		return "bad_signature"
	case token.ErrExpired:
		return "expired"
	default:
		return "malformed"
	}
}
