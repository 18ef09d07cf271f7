package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/openboard/board-service/internal/auth/token"
	"github.com/openboard/board-service/internal/core/domain"
	"github.com/openboard/board-service/internal/core/ports"
)

type boardFixture struct {
	users    *stubUserRepo
	boards   *stubBoardRepo
	comments *stubCommentRepo
	cache    *stubBoardCache
	sink     *stubAuditSink
	codec    *token.Codec
	svc      *BoardService
}

func newBoardFixture() *boardFixture {
	users := newStubUserRepo()
	boards := newStubBoardRepo()
	comments := newStubCommentRepo()
	cache := newStubBoardCache()
	sink := &stubAuditSink{}
	codec, resolver := testAuth(users)
	svc := NewBoardService(boards, comments, cache, resolver, sink, zerolog.Nop())
	return &boardFixture{users: users, boards: boards, comments: comments, cache: cache, sink: sink, codec: codec, svc: svc}
}

func TestBoardService_CreateAndGet(t *testing.T) {
	f := newBoardFixture()
	seedUser(f.users, "alice", domain.RoleUser)

	created, err := f.svc.Create(context.Background(), ports.CreateBoardInput{
		Title:    "hello",
		Content:  "world",
		RawToken: bearer(f.codec, "alice", domain.RoleUser),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.OwnerUsername != "alice" {
		t.Fatalf("owner: got %q", created.OwnerUsername)
	}

	got, err := f.svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "hello" {
		t.Fatalf("title: got %q", got.Title)
	}

	// The read populated the cache.
	if cached, _ := f.cache.Get(context.Background(), created.ID); cached == nil {
		t.Fatalf("expected board in cache after read")
	}
}

func TestBoardService_Get_CacheHit(t *testing.T) {
	f := newBoardFixture()

	// Only in the cache, not in the repository: a hit never reaches the repo.
	_ = f.cache.Set(context.Background(), &domain.Board{ID: "board-9", Title: "cached"})

	got, err := f.svc.Get(context.Background(), "board-9")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "cached" {
		t.Fatalf("expected cached copy, got %+v", got)
	}
}

func TestBoardService_Get_NotFound(t *testing.T) {
	f := newBoardFixture()
	if _, err := f.svc.Get(context.Background(), "board-404"); err != domain.ErrBoardNotFound {
		t.Fatalf("expected ErrBoardNotFound, got %v", err)
	}
}

func TestBoardService_Update_GuardAndCacheInvalidation(t *testing.T) {
	f := newBoardFixture()
	seedUser(f.users, "alice", domain.RoleUser)
	seedUser(f.users, "bob", domain.RoleUser)

	created, err := f.svc.Create(context.Background(), ports.CreateBoardInput{
		Title: "t", Content: "c", RawToken: bearer(f.codec, "alice", domain.RoleUser),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := f.svc.Get(context.Background(), created.ID); err != nil {
		t.Fatalf("get: %v", err)
	}

	_, err = f.svc.Update(context.Background(), ports.UpdateBoardInput{
		BoardID: created.ID, Title: "x", Content: "y",
		RawToken: bearer(f.codec, "bob", domain.RoleUser),
	})
	if err != domain.ErrNotAllowed {
		t.Fatalf("expected ErrNotAllowed, got %v", err)
	}

	updated, err := f.svc.Update(context.Background(), ports.UpdateBoardInput{
		BoardID: created.ID, Title: "new title", Content: "new content",
		RawToken: bearer(f.codec, "alice", domain.RoleUser),
	})
	if err != nil {
		t.Fatalf("owner update: %v", err)
	}
	if updated.Title != "new title" {
		t.Fatalf("title: got %q", updated.Title)
	}

	// The stale cached copy is gone.
	if cached, _ := f.cache.Get(context.Background(), created.ID); cached != nil {
		t.Fatalf("expected cache invalidated after update")
	}
}

func TestBoardService_Delete_CascadesComments(t *testing.T) {
	f := newBoardFixture()
	seedUser(f.users, "alice", domain.RoleUser)
	seedUser(f.users, "mod", domain.RoleAdmin)

	created, err := f.svc.Create(context.Background(), ports.CreateBoardInput{
		Title: "t", Content: "c", RawToken: bearer(f.codec, "alice", domain.RoleUser),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	_, _ = f.comments.Create(context.Background(), &domain.Comment{BoardID: created.ID, OwnerUsername: "bob", Content: "hi"})

	// Admin may delete a board it does not own.
	if err := f.svc.Delete(context.Background(), created.ID, bearer(f.codec, "mod", domain.RoleAdmin)); err != nil {
		t.Fatalf("admin delete: %v", err)
	}

	if _, err := f.boards.FindByID(context.Background(), created.ID); err != domain.ErrBoardNotFound {
		t.Fatalf("board should be gone, got %v", err)
	}
	left, _ := f.comments.FindByBoard(context.Background(), created.ID)
	if len(left) != 0 {
		t.Fatalf("expected comments cascaded, %d left", len(left))
	}
}

func TestBoardService_List(t *testing.T) {
	f := newBoardFixture()
	seedUser(f.users, "alice", domain.RoleUser)

	for i := 0; i < 3; i++ {
		if _, err := f.svc.Create(context.Background(), ports.CreateBoardInput{
			Title: "t", Content: "c", RawToken: bearer(f.codec, "alice", domain.RoleUser),
		}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	views, err := f.svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(views) != 3 {
		t.Fatalf("expected 3 boards, got %d", len(views))
	}
}
