package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/openboard/board-service/internal/api/metrics"
	"github.com/openboard/board-service/internal/core/domain"
	"github.com/openboard/board-service/internal/core/ports"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService returns an AuditService that persists entries to the audit
// repository. It runs off the request path; failures are logged by the
// dispatcher and never reach a caller.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

func (s *auditService) Record(ctx context.Context, event domain.AuditEvent) error {
	start := time.Now()
	if err := s.repo.Insert(ctx, &event); err != nil {
		return fmt.Errorf("record audit event: %w", err)
	}
	metrics.AuditWriteDuration.Observe(time.Since(start).Seconds())

	s.log.Debug().
		Str("action", string(event.Action)).
		Str("actor", event.Actor).
		Str("board_id", event.BoardID).
		Msg("audit event recorded")

	return nil
}
