package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/JAL-Virtual/jal-bookings-events-sub000/internal/domain"
	"github.com/JAL-Virtual/jal-bookings-events-sub000/internal/service/ports"
)

const (
	defaultAuditLimit = 100
	maxAuditLimit     = 500
)

type AuditService struct {
	repo ports.AuditRepo
}

func NewAuditService(repo ports.AuditRepo) *AuditService {
	return &AuditService{repo: repo}
}

func (s *AuditService) List(ctx context.Context, limit int) ([]*domain.AuditEntry, error) {
	if limit <= 0 {
		limit = defaultAuditLimit
	}
	if limit > maxAuditLimit {
		limit = maxAuditLimit
	}
	return s.repo.List(ctx, limit)
}

// recordAudit writes one change-log entry; failures are logged, not
// surfaced, so the audit trail never blocks a committed write.
func recordAudit(
	ctx context.Context,
	repo ports.AuditRepo,
	log logger.Logger,
	actor, action, entity, entityID string,
	detail any,
) {
	entry := &domain.AuditEntry{
		ID:        uuid.New().String(),
		Actor:     actor,
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
		CreatedAt: time.Now().UTC(),
	}
	if detail != nil {
		if raw, err := json.Marshal(detail); err == nil {
			entry.Detail = string(raw)
		}
	}

	if err := repo.Record(ctx, entry); err != nil {
		log.Error("failed to record audit entry",
			logger.String("entity", entity),
			logger.String("entity_id", entityID),
			logger.String("error", err.Error()),
		)
	}
}
