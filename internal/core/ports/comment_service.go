package ports

import (
	"context"
	"time"
)

// CommentView is the outward shape of a comment after an operation.
type CommentView struct {
	ID            string    `json:"id"`
	BoardID       string    `json:"board_id"`
	OwnerUsername string    `json:"owner_username"`
	Content       string    `json:"content"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type CreateCommentInput struct {
	BoardID  string
	Content  string
	RawToken string
}

type UpdateCommentInput struct {
	CommentID string
	BoardID   string
	Content   string
	RawToken  string
}

type CommentService interface {
	Create(ctx context.Context, in CreateCommentInput) (*CommentView, error)
	Update(ctx context.Context, in UpdateCommentInput) (*CommentView, error)
	Delete(ctx context.Context, commentID, rawToken string) error
	ListByBoard(ctx context.Context, boardID string) ([]*CommentView, error)
}
