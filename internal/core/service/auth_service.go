package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/openboard/board-service/internal/api/metrics"
	"github.com/openboard/board-service/internal/auth/token"
	"github.com/openboard/board-service/internal/core/domain"
	"github.com/openboard/board-service/internal/core/ports"
)

// AuthService implements signup and login.
type AuthService struct {
	users      ports.UserRepository
	codec      *token.Codec
	adminToken string
	log        zerolog.Logger
}

// NewAuthService wires the auth service. adminToken is the shared enrollment
// secret a signup must present to receive the admin role; it comes from
// configuration and never changes after start.
func NewAuthService(users ports.UserRepository, codec *token.Codec, adminToken string, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, codec: codec, adminToken: adminToken, log: log}
}

// SignUp registers a new account. Duplicate usernames are rejected; a request
// for the admin role must carry the exact enrollment secret, anything else is
// reported as a missing token.
func (s *AuthService) SignUp(ctx context.Context, in ports.SignUpInput) (*domain.User, error) {
	if _, err := s.users.FindByUsername(ctx, in.Username); err == nil {
		metrics.SignupsTotal.WithLabelValues("duplicate").Inc()
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	role := domain.RoleUser
	if in.WantAdmin {
		if subtle.ConstantTimeCompare([]byte(in.AdminToken), []byte(s.adminToken)) != 1 {
			metrics.SignupsTotal.WithLabelValues("bad_admin_token").Inc()
			s.log.Warn().Str("username", in.Username).Msg("admin signup with bad enrollment token")
			return nil, domain.ErrTokenNotFound
		}
		role = domain.RoleAdmin
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     in.Username,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			metrics.SignupsTotal.WithLabelValues("duplicate").Inc()
		}
		return nil, err
	}

	metrics.SignupsTotal.WithLabelValues("ok").Inc()
	s.log.Info().Str("username", created.Username).Str("role", string(created.Role)).Msg("user signed up")
	return created, nil
}

// Login verifies the password and issues a signed token carrying the user's
// username and role.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("user_not_found").Inc()
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("invalid_password").Inc()
		return "", nil, domain.ErrInvalidPassword
	}

	tok, err := s.codec.Issue(user.Username, user.Role)
	if err != nil {
		return "", nil, err
	}

	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	s.log.Info().Str("username", user.Username).Msg("user logged in")
	return tok, user, nil
}
