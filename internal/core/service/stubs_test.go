package service

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/openboard/board-service/internal/auth"
	"github.com/openboard/board-service/internal/auth/token"
	"github.com/openboard/board-service/internal/core/domain"
)

var testEpoch = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// ── user repository ───────────────────────────────────────────────────────────

type stubUserRepo struct {
	users map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrUserExists
	}
	clone := *user
	if clone.ID == "" {
		clone.ID = user.Username
	}
	r.users[clone.Username] = &clone
	out := clone
	return &out, nil
}

// ── board repository ──────────────────────────────────────────────────────────

type stubBoardRepo struct {
	boards map[string]*domain.Board
	nextID int
}

func newStubBoardRepo() *stubBoardRepo {
	return &stubBoardRepo{boards: make(map[string]*domain.Board)}
}

func (r *stubBoardRepo) FindByID(_ context.Context, id string) (*domain.Board, error) {
	b, ok := r.boards[id]
	if !ok {
		return nil, domain.ErrBoardNotFound
	}
	clone := *b
	return &clone, nil
}

func (r *stubBoardRepo) List(_ context.Context) ([]*domain.Board, error) {
	out := make([]*domain.Board, 0, len(r.boards))
	for _, b := range r.boards {
		clone := *b
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubBoardRepo) Create(_ context.Context, board *domain.Board) (*domain.Board, error) {
	r.nextID++
	clone := *board
	clone.ID = "board-" + strconv.Itoa(r.nextID)
	r.boards[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubBoardRepo) Update(_ context.Context, board *domain.Board) error {
	if _, ok := r.boards[board.ID]; !ok {
		return domain.ErrBoardNotFound
	}
	clone := *board
	r.boards[board.ID] = &clone
	return nil
}

func (r *stubBoardRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.boards[id]; !ok {
		return domain.ErrBoardNotFound
	}
	delete(r.boards, id)
	return nil
}

// ── comment repository ────────────────────────────────────────────────────────

type stubCommentRepo struct {
	comments map[string]*domain.Comment
	nextID   int
}

func newStubCommentRepo() *stubCommentRepo {
	return &stubCommentRepo{comments: make(map[string]*domain.Comment)}
}

func (r *stubCommentRepo) FindByID(_ context.Context, id string) (*domain.Comment, error) {
	c, ok := r.comments[id]
	if !ok {
		return nil, domain.ErrCommentNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubCommentRepo) FindByBoard(_ context.Context, boardID string) ([]*domain.Comment, error) {
	var out []*domain.Comment
	for _, c := range r.comments {
		if c.BoardID == boardID {
			clone := *c
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubCommentRepo) Create(_ context.Context, comment *domain.Comment) (*domain.Comment, error) {
	r.nextID++
	clone := *comment
	clone.ID = "comment-" + strconv.Itoa(r.nextID)
	r.comments[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubCommentRepo) Update(_ context.Context, comment *domain.Comment) error {
	if _, ok := r.comments[comment.ID]; !ok {
		return domain.ErrCommentNotFound
	}
	clone := *comment
	r.comments[comment.ID] = &clone
	return nil
}

func (r *stubCommentRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.comments[id]; !ok {
		return domain.ErrCommentNotFound
	}
	delete(r.comments, id)
	return nil
}

func (r *stubCommentRepo) DeleteByBoard(_ context.Context, boardID string) error {
	for id, c := range r.comments {
		if c.BoardID == boardID {
			delete(r.comments, id)
		}
	}
	return nil
}

// ── cache / audit sink ────────────────────────────────────────────────────────

type stubBoardCache struct {
	entries map[string]*domain.Board
}

func newStubBoardCache() *stubBoardCache {
	return &stubBoardCache{entries: make(map[string]*domain.Board)}
}

func (c *stubBoardCache) Get(_ context.Context, id string) (*domain.Board, error) {
	b, ok := c.entries[id]
	if !ok {
		return nil, nil
	}
	clone := *b
	return &clone, nil
}

func (c *stubBoardCache) Set(_ context.Context, board *domain.Board) error {
	clone := *board
	c.entries[board.ID] = &clone
	return nil
}

func (c *stubBoardCache) Invalidate(_ context.Context, id string) error {
	delete(c.entries, id)
	return nil
}

type stubAuditSink struct {
	mu     sync.Mutex
	events []domain.AuditEvent
}

func (s *stubAuditSink) Enqueue(event domain.AuditEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
}

func (s *stubAuditSink) actions() []domain.AuditAction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.AuditAction, 0, len(s.events))
	for _, e := range s.events {
		out = append(out, e.Action)
	}
	return out
}

// ── helpers ───────────────────────────────────────────────────────────────────

// testAuth builds a codec/resolver pair over the given user repo with a fixed
// clock at testEpoch.
func testAuth(users *stubUserRepo) (*token.Codec, *auth.Resolver) {
	codec := token.NewCodec([]byte("secret"), time.Hour).WithClock(func() time.Time { return testEpoch })
	return codec, auth.NewResolver(codec, users, zerolog.Nop())
}

func seedUser(repo *stubUserRepo, username string, role domain.Role) {
	repo.users[username] = &domain.User{ID: username, Username: username, Role: role}
}

func bearer(codec *token.Codec, username string, role domain.Role) string {
	raw, err := codec.Issue(username, role)
	if err != nil {
		panic(err)
	}
	return "Bearer " + raw
}
