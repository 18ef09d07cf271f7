package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/openboard/board-service/internal/api/metrics"
	"github.com/openboard/board-service/internal/auth"
	"github.com/openboard/board-service/internal/core/domain"
	"github.com/openboard/board-service/internal/core/ports"
)

// CommentService orchestrates comment mutations. It owns no policy itself:
// identity comes from the resolver, the allow/deny call from auth.Decide.
type CommentService struct {
	comments ports.CommentRepository
	boards   ports.BoardRepository
	resolver *auth.Resolver
	audit    ports.AuditSink
	log      zerolog.Logger
}

func NewCommentService(
	comments ports.CommentRepository,
	boards ports.BoardRepository,
	resolver *auth.Resolver,
	audit ports.AuditSink,
	log zerolog.Logger,
) *CommentService {
	return &CommentService{comments: comments, boards: boards, resolver: resolver, audit: audit, log: log}
}

// Create posts a new comment to a board. Any authenticated user may create;
// the comment is owned by the resolved principal.
func (s *CommentService) Create(ctx context.Context, in ports.CreateCommentInput) (*ports.CommentView, error) {
	principal, err := s.resolver.Resolve(ctx, in.RawToken)
	if err != nil {
		return nil, err
	}

	if _, err := s.boards.FindByID(ctx, in.BoardID); err != nil {
		metrics.MutationsTotal.WithLabelValues("comment", "create", "not_found").Inc()
		return nil, err
	}

	now := time.Now().UTC()
	comment := &domain.Comment{
		BoardID:       in.BoardID,
		OwnerUsername: principal.Username,
		Content:       in.Content,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.comments.Create(ctx, comment)
	if err != nil {
		metrics.MutationsTotal.WithLabelValues("comment", "create", "error").Inc()
		return nil, err
	}

	metrics.MutationsTotal.WithLabelValues("comment", "create", "ok").Inc()
	s.log.Info().Str("comment_id", created.ID).Str("board_id", created.BoardID).Str("owner", created.OwnerUsername).Msg("comment created")
	s.audit.Enqueue(domain.AuditEvent{
		Action:    domain.AuditCommentCreated,
		Actor:     principal.Username,
		BoardID:   created.BoardID,
		CommentID: created.ID,
		At:        now,
	})

	return commentView(created), nil
}

// Update rewrites a comment's content. The request must name the board the
// comment actually belongs to; a linkage mismatch is reported exactly like a
// missing board.
func (s *CommentService) Update(ctx context.Context, in ports.UpdateCommentInput) (*ports.CommentView, error) {
	principal, err := s.resolver.Resolve(ctx, in.RawToken)
	if err != nil {
		return nil, err
	}

	comment, err := s.comments.FindByID(ctx, in.CommentID)
	if err != nil {
		metrics.MutationsTotal.WithLabelValues("comment", "update", "not_found").Inc()
		return nil, err
	}

	board, err := s.boards.FindByID(ctx, in.BoardID)
	if err != nil {
		metrics.MutationsTotal.WithLabelValues("comment", "update", "not_found").Inc()
		return nil, err
	}
	if comment.BoardID != board.ID {
		metrics.MutationsTotal.WithLabelValues("comment", "update", "not_found").Inc()
		return nil, domain.ErrBoardNotFound
	}

	if auth.Decide(*principal, comment.OwnerUsername, auth.ActionUpdate) != auth.Allow {
		metrics.MutationsTotal.WithLabelValues("comment", "update", "denied").Inc()
		return nil, domain.ErrNotAllowed
	}

	comment.Content = in.Content
	comment.UpdatedAt = time.Now().UTC()
	if err := s.comments.Update(ctx, comment); err != nil {
		metrics.MutationsTotal.WithLabelValues("comment", "update", "error").Inc()
		return nil, err
	}

	metrics.MutationsTotal.WithLabelValues("comment", "update", "ok").Inc()
	s.log.Info().Str("comment_id", comment.ID).Str("actor", principal.Username).Msg("comment updated")
	s.audit.Enqueue(domain.AuditEvent{
		Action:    domain.AuditCommentUpdated,
		Actor:     principal.Username,
		BoardID:   comment.BoardID,
		CommentID: comment.ID,
		At:        comment.UpdatedAt,
	})

	return commentView(comment), nil
}

// Delete removes a comment. Owner or admin only.
func (s *CommentService) Delete(ctx context.Context, commentID, rawToken string) error {
	principal, err := s.resolver.Resolve(ctx, rawToken)
	if err != nil {
		return err
	}

	comment, err := s.comments.FindByID(ctx, commentID)
	if err != nil {
		metrics.MutationsTotal.WithLabelValues("comment", "delete", "not_found").Inc()
		return err
	}

	if auth.Decide(*principal, comment.OwnerUsername, auth.ActionDelete) != auth.Allow {
		metrics.MutationsTotal.WithLabelValues("comment", "delete", "denied").Inc()
		return domain.ErrNotAllowed
	}

	if err := s.comments.Delete(ctx, comment.ID); err != nil {
		metrics.MutationsTotal.WithLabelValues("comment", "delete", "error").Inc()
		return err
	}

	metrics.MutationsTotal.WithLabelValues("comment", "delete", "ok").Inc()
	s.log.Info().Str("comment_id", comment.ID).Str("actor", principal.Username).Msg("comment deleted")
	s.audit.Enqueue(domain.AuditEvent{
		Action:    domain.AuditCommentDeleted,
		Actor:     principal.Username,
		BoardID:   comment.BoardID,
		CommentID: comment.ID,
		At:        time.Now().UTC(),
	})

	return nil
}

// ListByBoard returns a board's comments, newest last. Public read.
func (s *CommentService) ListByBoard(ctx context.Context, boardID string) ([]*ports.CommentView, error) {
	if _, err := s.boards.FindByID(ctx, boardID); err != nil {
		return nil, err
	}

	comments, err := s.comments.FindByBoard(ctx, boardID)
	if err != nil {
		return nil, err
	}

	views := make([]*ports.CommentView, 0, len(comments))
	for _, c := range comments {
		views = append(views, commentView(c))
	}
	return views, nil
}

func commentView(c *domain.Comment) *ports.CommentView {
	return &ports.CommentView{
		ID:            c.ID,
		BoardID:       c.BoardID,
		OwnerUsername: c.OwnerUsername,
		Content:       c.Content,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}
