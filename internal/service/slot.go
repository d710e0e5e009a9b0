package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/JAL-Virtual/jal-bookings-events-sub000/internal/domain"
	"github.com/JAL-Virtual/jal-bookings-events-sub000/internal/service/ports"
)

type SlotService struct {
	repo      ports.SlotRepo
	auditRepo ports.AuditRepo
	cache     ports.EventCache
	logger    logger.Logger
}

func NewSlotService(
	repo ports.SlotRepo,
	auditRepo ports.AuditRepo,
	cache ports.EventCache,
	logger logger.Logger,
) *SlotService {
	return &SlotService{
		repo:      repo,
		auditRepo: auditRepo,
		cache:     cache,
		logger:    logger,
	}
}

func (s *SlotService) Create(ctx context.Context, actor string, in domain.CreateSlotInput) (*domain.Slot, error) {
	if in.EventID == "" {
		return nil, fmt.Errorf("%w: event_id is required", domain.ErrValidation)
	}
	if in.SlotNumber <= 0 {
		return nil, fmt.Errorf("%w: slot_number must be positive", domain.ErrValidation)
	}
	if in.Type != domain.SlotTypeDeparture && in.Type != domain.SlotTypeArrival {
		return nil, fmt.Errorf("%w: type must be DEPARTURE or ARRIVAL", domain.ErrValidation)
	}

	now := time.Now().UTC()
	slot := &domain.Slot{
		ID:         uuid.New().String(),
		EventID:    in.EventID,
		SlotNumber: in.SlotNumber,
		Type:       in.Type,
		Callsign:   in.Callsign,
		Aircraft:   in.Aircraft,
		Status:     domain.SlotStatusAvailable,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Create(ctx, slot); err != nil {
		return nil, fmt.Errorf("create slot: %w", err)
	}

	s.cache.Invalidate(ctx, slot.EventID)
	recordAudit(ctx, s.auditRepo, s.logger, actor, "create", "slot", slot.ID, slot)

	return slot, nil
}

func (s *SlotService) Update(ctx context.Context, actor, id string, in domain.UpdateSlotInput) (*domain.Slot, error) {
	if in.SlotNumber != nil && *in.SlotNumber <= 0 {
		return nil, fmt.Errorf("%w: slot_number must be positive", domain.ErrValidation)
	}
	if in.Type != nil && *in.Type != domain.SlotTypeDeparture && *in.Type != domain.SlotTypeArrival {
		return nil, fmt.Errorf("%w: type must be DEPARTURE or ARRIVAL", domain.ErrValidation)
	}

	slot, err := s.repo.Update(ctx, id, in)
	if err != nil {
		return nil, fmt.Errorf("update slot: %w", err)
	}

	s.cache.Invalidate(ctx, slot.EventID)
	recordAudit(ctx, s.auditRepo, s.logger, actor, "update", "slot", id, in)

	return slot, nil
}

func (s *SlotService) Delete(ctx context.Context, actor, id string) error {
	slot, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete slot: %w", err)
	}

	s.cache.Invalidate(ctx, slot.EventID)
	recordAudit(ctx, s.auditRepo, s.logger, actor, "delete", "slot", id, nil)

	return nil
}

func (s *SlotService) ListByEvent(ctx context.Context, eventID string) ([]*domain.Slot, error) {
	if eventID == "" {
		return nil, fmt.Errorf("%w: event_id is required", domain.ErrValidation)
	}
	return s.repo.ListByEvent(ctx, eventID)
}
