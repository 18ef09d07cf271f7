package ports

import (
	"context"

	"github.com/openboard/board-service/internal/core/domain"
)

// AuditRepository persists audit trail entries.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuditEvent) error
}

// AuditService consumes audit events off the dispatcher workers.
type AuditService interface {
	Record(ctx context.Context, event domain.AuditEvent) error
}

// AuditSink is what the orchestrating services see: a non-blocking handoff of
// an audit event to the async pipeline. Implemented by the queue dispatcher.
type AuditSink interface {
	Enqueue(event domain.AuditEvent)
}
