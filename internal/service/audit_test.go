package service

import (
	"context"
	"testing"

	"github.com/JAL-Virtual/jal-bookings-events-sub000/internal/domain"
	"github.com/JAL-Virtual/jal-bookings-events-sub000/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuditService_List_DefaultLimit(t *testing.T) {
	auditRepo := mocks.NewMockAuditRepo(t)
	svc := NewAuditService(auditRepo)

	entries := []*domain.AuditEntry{
		{ID: "a1", Actor: "admin", Action: "create", Entity: "event", EntityID: "e1"},
	}
	auditRepo.EXPECT().List(mock.Anything, defaultAuditLimit).Return(entries, nil)

	result, err := svc.List(context.Background(), 0)

	require.NoError(t, err)
	assert.Len(t, result, 1)
}

func TestAuditService_List_CapsLimit(t *testing.T) {
	auditRepo := mocks.NewMockAuditRepo(t)
	svc := NewAuditService(auditRepo)

	auditRepo.EXPECT().List(mock.Anything, maxAuditLimit).Return(nil, nil)

	_, err := svc.List(context.Background(), 10000)

	require.NoError(t, err)
}

func TestAuditService_List_PassesLimit(t *testing.T) {
	auditRepo := mocks.NewMockAuditRepo(t)
	svc := NewAuditService(auditRepo)

	auditRepo.EXPECT().List(mock.Anything, 25).Return(nil, nil)

	_, err := svc.List(context.Background(), 25)

	require.NoError(t, err)
}

func TestRecordAudit_MarshalsDetail(t *testing.T) {
	auditRepo := mocks.NewMockAuditRepo(t)
	log := newTestLogger(t)

	auditRepo.EXPECT().Record(mock.Anything, mock.MatchedBy(func(e *domain.AuditEntry) bool {
		return e.Actor == "staff" &&
			e.Action == "update" &&
			e.Entity == "slot" &&
			e.EntityID == "s1" &&
			e.Detail != "" &&
			e.ID != ""
	})).Return(nil)

	recordAudit(context.Background(), auditRepo, log, "staff", "update", "slot", "s1", map[string]int{"slot_number": 4})
}

func TestRecordAudit_NilDetail(t *testing.T) {
	auditRepo := mocks.NewMockAuditRepo(t)
	log := newTestLogger(t)

	auditRepo.EXPECT().Record(mock.Anything, mock.MatchedBy(func(e *domain.AuditEntry) bool {
		return e.Detail == "" && e.Action == "delete"
	})).Return(nil)

	recordAudit(context.Background(), auditRepo, log, "admin", "delete", "event", "e1", nil)
}

func TestRecordAudit_RepoErrorNotSurfaced(t *testing.T) {
	auditRepo := mocks.NewMockAuditRepo(t)
	log := newTestLogger(t)

	auditRepo.EXPECT().Record(mock.Anything, mock.Anything).Return(assert.AnError)

	// Must not panic; the failure is only logged.
	recordAudit(context.Background(), auditRepo, log, "admin", "delete", "event", "e1", nil)
}
