package ports

import (
	"context"

	"github.com/openboard/board-service/internal/core/domain"
)

// BoardRepository defines the interface for board persistence.
type BoardRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Board, error)
	List(ctx context.Context) ([]*domain.Board, error)
	Create(ctx context.Context, board *domain.Board) (*domain.Board, error)
	Update(ctx context.Context, board *domain.Board) error
	Delete(ctx context.Context, id string) error
}

// BoardCache is a read-side cache for board lookups. Misses and cache errors
// fall through to the repository.
type BoardCache interface {
	Get(ctx context.Context, id string) (*domain.Board, error)
	Set(ctx context.Context, board *domain.Board) error
	Invalidate(ctx context.Context, id string) error
}
