package ports

import (
	"context"
	"time"
)

// BoardView is the outward shape of a board after an operation.
type BoardView struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	OwnerUsername string    `json:"owner_username"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type CreateBoardInput struct {
	Title    string
	Content  string
	RawToken string
}

type UpdateBoardInput struct {
	BoardID  string
	Title    string
	Content  string
	RawToken string
}

type BoardService interface {
	Create(ctx context.Context, in CreateBoardInput) (*BoardView, error)
	Get(ctx context.Context, id string) (*BoardView, error)
	List(ctx context.Context) ([]*BoardView, error)
	Update(ctx context.Context, in UpdateBoardInput) (*BoardView, error)
	Delete(ctx context.Context, id, rawToken string) error
}
