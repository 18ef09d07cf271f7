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

// BoardService orchestrates board CRUD. Reads are public and cache-aside;
// mutations go through the same resolver/guard pair as comments.
type BoardService struct {
	boards   ports.BoardRepository
	comments ports.CommentRepository
	cache    ports.BoardCache
	resolver *auth.Resolver
	audit    ports.AuditSink
	log      zerolog.Logger
}

func NewBoardService(
	boards ports.BoardRepository,
	comments ports.CommentRepository,
	cache ports.BoardCache,
	resolver *auth.Resolver,
	audit ports.AuditSink,
	log zerolog.Logger,
) *BoardService {
	return &BoardService{boards: boards, comments: comments, cache: cache, resolver: resolver, audit: audit, log: log}
}

func (s *BoardService) Create(ctx context.Context, in ports.CreateBoardInput) (*ports.BoardView, error) {
	principal, err := s.resolver.Resolve(ctx, in.RawToken)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	board := &domain.Board{
		Title:         in.Title,
		Content:       in.Content,
		OwnerUsername: principal.Username,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.boards.Create(ctx, board)
	if err != nil {
		metrics.MutationsTotal.WithLabelValues("board", "create", "error").Inc()
		return nil, err
	}

	metrics.MutationsTotal.WithLabelValues("board", "create", "ok").Inc()
	s.log.Info().Str("board_id", created.ID).Str("owner", created.OwnerUsername).Msg("board created")
	s.audit.Enqueue(domain.AuditEvent{
		Action:  domain.AuditBoardCreated,
		Actor:   principal.Username,
		BoardID: created.ID,
		At:      now,
	})

	return boardView(created), nil
}

// Get returns a single board, consulting the cache first. Cache errors are
// logged and treated as misses.
func (s *BoardService) Get(ctx context.Context, id string) (*ports.BoardView, error) {
	if cached, err := s.cache.Get(ctx, id); err != nil {
		s.log.Warn().Err(err).Str("board_id", id).Msg("board cache read failed")
	} else if cached != nil {
		metrics.BoardCacheTotal.WithLabelValues("hit").Inc()
		return boardView(cached), nil
	} else {
		metrics.BoardCacheTotal.WithLabelValues("miss").Inc()
	}

	board, err := s.boards.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, board); err != nil {
		s.log.Warn().Err(err).Str("board_id", id).Msg("board cache write failed")
	}

	return boardView(board), nil
}

func (s *BoardService) List(ctx context.Context) ([]*ports.BoardView, error) {
	boards, err := s.boards.List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]*ports.BoardView, 0, len(boards))
	for _, b := range boards {
		views = append(views, boardView(b))
	}
	return views, nil
}

func (s *BoardService) Update(ctx context.Context, in ports.UpdateBoardInput) (*ports.BoardView, error) {
	principal, err := s.resolver.Resolve(ctx, in.RawToken)
	if err != nil {
		return nil, err
	}

	board, err := s.boards.FindByID(ctx, in.BoardID)
	if err != nil {
		metrics.MutationsTotal.WithLabelValues("board", "update", "not_found").Inc()
		return nil, err
	}

	if auth.Decide(*principal, board.OwnerUsername, auth.ActionUpdate) != auth.Allow {
		metrics.MutationsTotal.WithLabelValues("board", "update", "denied").Inc()
		return nil, domain.ErrNotAllowed
	}

	board.Title = in.Title
	board.Content = in.Content
	board.UpdatedAt = time.Now().UTC()
	if err := s.boards.Update(ctx, board); err != nil {
		metrics.MutationsTotal.WithLabelValues("board", "update", "error").Inc()
		return nil, err
	}

	if err := s.cache.Invalidate(ctx, board.ID); err != nil {
		s.log.Warn().Err(err).Str("board_id", board.ID).Msg("board cache invalidation failed")
	}

	metrics.MutationsTotal.WithLabelValues("board", "update", "ok").Inc()
	s.log.Info().Str("board_id", board.ID).Str("actor", principal.Username).Msg("board updated")
	s.audit.Enqueue(domain.AuditEvent{
		Action:  domain.AuditBoardUpdated,
		Actor:   principal.Username,
		BoardID: board.ID,
		At:      board.UpdatedAt,
	})

	return boardView(board), nil
}

// Delete removes a board and all of its comments.
func (s *BoardService) Delete(ctx context.Context, id, rawToken string) error {
	principal, err := s.resolver.Resolve(ctx, rawToken)
	if err != nil {
		return err
	}

	board, err := s.boards.FindByID(ctx, id)
	if err != nil {
		metrics.MutationsTotal.WithLabelValues("board", "delete", "not_found").Inc()
		return err
	}

	if auth.Decide(*principal, board.OwnerUsername, auth.ActionDelete) != auth.Allow {
		metrics.MutationsTotal.WithLabelValues("board", "delete", "denied").Inc()
		return domain.ErrNotAllowed
	}

	if err := s.comments.DeleteByBoard(ctx, board.ID); err != nil {
		metrics.MutationsTotal.WithLabelValues("board", "delete", "error").Inc()
		return err
	}
	if err := s.boards.Delete(ctx, board.ID); err != nil {
		metrics.MutationsTotal.WithLabelValues("board", "delete", "error").Inc()
		return err
	}

	if err := s.cache.Invalidate(ctx, board.ID); err != nil {
		s.log.Warn().Err(err).Str("board_id", board.ID).Msg("board cache invalidation failed")
	}

	metrics.MutationsTotal.WithLabelValues("board", "delete", "ok").Inc()
	s.log.Info().Str("board_id", board.ID).Str("actor", principal.Username).Msg("board deleted")
	s.audit.Enqueue(domain.AuditEvent{
		Action:  domain.AuditBoardDeleted,
		Actor:   principal.Username,
		BoardID: board.ID,
		At:      time.Now().UTC(),
	})

	return nil
}

func boardView(b *domain.Board) *ports.BoardView {
	return &ports.BoardView{
		ID:            b.ID,
		Title:         b.Title,
		Content:       b.Content,
		OwnerUsername: b.OwnerUsername,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}
