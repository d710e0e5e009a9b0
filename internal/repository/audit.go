package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/JAL-Virtual/jal-bookings-events-sub000/internal/domain"
)

type AuditRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewAuditRepo(db *dbpg.DB) *AuditRepository {
	return &AuditRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *AuditRepository) Record(ctx context.Context, e *domain.AuditEntry) error {
	query := `INSERT INTO audit_logs (id, actor, action, entity, entity_id, detail, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`

	// detail is JSONB; an empty string is not valid JSON, so entries
	// without detail go in as NULL.
	detail := sql.NullString{String: e.Detail, Valid: e.Detail != ""}

	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Actor, e.Action, e.Entity, e.EntityID, detail, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}

	return nil
}

func (r *AuditRepository) List(ctx context.Context, limit int) ([]*domain.AuditEntry, error) {
	query := `SELECT id, actor, action, entity, entity_id, detail, created_at
			  FROM audit_logs
			  ORDER BY created_at DESC
			  LIMIT $1`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}
	defer rows.Close()

	var res []*domain.AuditEntry
	for rows.Next() {
		var e domain.AuditEntry
		var detail sql.NullString
		if err = rows.Scan(&e.ID, &e.Actor, &e.Action, &e.Entity, &e.EntityID, &detail, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan audit entry: %w", err)
		}
		e.Detail = detail.String
		res = append(res, &e)
	}

	return res, rows.Err()
}
