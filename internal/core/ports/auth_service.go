package ports

import (
	"context"

	"github.com/openboard/board-service/internal/core/domain"
)

// SignUpInput carries a registration request. AdminToken is only consulted
// when WantAdmin is set.
type SignUpInput struct {
	Username   string
	Password   string
	WantAdmin  bool
	AdminToken string
}

type AuthService interface {
	SignUp(ctx context.Context, in SignUpInput) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
