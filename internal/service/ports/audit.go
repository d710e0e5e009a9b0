package ports

import (
	"context"

	"github.com/JAL-Virtual/jal-bookings-events-sub000/internal/domain"
)

type AuditRepo interface {
	Record(ctx context.Context, e *domain.AuditEntry) error
	List(ctx context.Context, limit int) ([]*domain.AuditEntry, error)
}
