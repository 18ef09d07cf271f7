package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/openboard/board-service/internal/core/domain"
)

type recordingAuditService struct {
	mu     sync.Mutex
	events []domain.AuditEvent
	done   chan struct{}
	want   int
}

func (s *recordingAuditService) Record(_ context.Context, event domain.AuditEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	if len(s.events) == s.want {
		close(s.done)
	}
	return nil
}

func TestDispatcher_DeliversAllEvents(t *testing.T) {
	svc := &recordingAuditService{done: make(chan struct{}), want: 6}
	d := NewDispatcher(3, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for i := 0; i < 6; i++ {
		d.Enqueue(domain.AuditEvent{
			Action:  domain.AuditCommentCreated,
			Actor:   "alice",
			BoardID: "board-" + string(rune('a'+i%2)),
			At:      time.Now().UTC(),
		})
	}

	select {
	case <-svc.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for events, got %d", len(svc.events))
	}
}

func TestDispatcher_PerBoardOrdering(t *testing.T) {
	svc := &recordingAuditService{done: make(chan struct{}), want: 4}
	d := NewDispatcher(4, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		d.Enqueue(domain.AuditEvent{
			Action:  domain.AuditCommentUpdated,
			Actor:   "alice",
			BoardID: "board-1",
			At:      base.Add(time.Duration(i) * time.Second),
		})
	}

	select {
	case <-svc.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for events")
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()
	for i := 1; i < len(svc.events); i++ {
		if svc.events[i].At.Before(svc.events[i-1].At) {
			t.Fatalf("events for one board delivered out of order: %v before %v",
				svc.events[i].At, svc.events[i-1].At)
		}
	}
}

func TestDispatcher_ShardIsStable(t *testing.T) {
	d := NewDispatcher(8, &recordingAuditService{done: make(chan struct{}), want: 0}, zerolog.Nop())

	first := d.shardIndex("board-42")
	for i := 0; i < 100; i++ {
		if d.shardIndex("board-42") != first {
			t.Fatalf("shard index not deterministic")
		}
	}
}
