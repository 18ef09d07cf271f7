package ports

import (
	"context"

	"github.com/openboard/board-service/internal/core/domain"
)

// CommentRepository defines the interface for comment persistence.
type CommentRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Comment, error)
	FindByBoard(ctx context.Context, boardID string) ([]*domain.Comment, error)
	Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	Update(ctx context.Context, comment *domain.Comment) error
	Delete(ctx context.Context, id string) error
	DeleteByBoard(ctx context.Context, boardID string) error
}
