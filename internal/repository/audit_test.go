package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JAL-Virtual/jal-bookings-events-sub000/internal/domain"
)

// Entries without detail must insert NULL: the column is JSONB and rejects
// an empty string.
func TestAuditRepository_Record_NoDetail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAuditRepo(db)

	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	entry := &domain.AuditEntry{
		ID:        "a1",
		Actor:     "admin",
		Action:    "delete",
		Entity:    "event",
		EntityID:  "e1",
		CreatedAt: now,
	}

	mock.ExpectExec("INSERT INTO audit_logs").
		WithArgs("a1", "admin", "delete", "event", "e1", nil, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Record(context.Background(), entry)

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepository_Record_WithDetail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAuditRepo(db)

	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	entry := &domain.AuditEntry{
		ID:        "a1",
		Actor:     "staff",
		Action:    "update",
		Entity:    "slot",
		EntityID:  "s1",
		Detail:    `{"slot_number":4}`,
		CreatedAt: now,
	}

	mock.ExpectExec("INSERT INTO audit_logs").
		WithArgs("a1", "staff", "update", "slot", "s1", `{"slot_number":4}`, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Record(context.Background(), entry)

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepository_List_NullDetail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAuditRepo(db)

	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "actor", "action", "entity", "entity_id", "detail", "created_at"}).
		AddRow("a2", "staff", "create", "slot", "s1", `{"slot_number":1}`, now).
		AddRow("a1", "admin", "delete", "event", "e1", nil, now)

	mock.ExpectQuery("SELECT id, actor, action, entity, entity_id, detail, created_at").
		WithArgs(100).
		WillReturnRows(rows)

	entries, err := repo.List(context.Background(), 100)

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, `{"slot_number":1}`, entries[0].Detail)
	assert.Empty(t, entries[1].Detail)
	require.NoError(t, mock.ExpectationsWereMet())
}
