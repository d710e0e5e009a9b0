package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/JAL-Virtual/jal-bookings-events-sub000/internal/domain"
)

type SlotRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewSlotRepo(db *dbpg.DB) *SlotRepository {
	return &SlotRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const slotColumns = `id, event_id, slot_number, type, callsign, aircraft, status, created_at, updated_at`

func (r *SlotRepository) Create(ctx context.Context, s *domain.Slot) error {
	query := `INSERT INTO slots (id, event_id, slot_number, type, callsign, aircraft, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		s.ID, s.EventID, s.SlotNumber, s.Type, s.Callsign, s.Aircraft,
		s.Status, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return fmt.Errorf("%w: slot number already exists for this event and type", domain.ErrValidation)
			case "23503":
				return domain.ErrEventNotFound
			}
		}
		return fmt.Errorf("insert slot: %w", err)
	}

	return nil
}

func (r *SlotRepository) GetByID(ctx context.Context, id string) (*domain.Slot, error) {
	query := `SELECT ` + slotColumns + ` FROM slots WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get slot: %w", err)
	}

	var s domain.Slot
	if err = scanSlot(row.Scan, &s); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSlotNotFound
		}
		return nil, fmt.Errorf("scan slot: %w", err)
	}

	return &s, nil
}

// Update applies the non-nil fields. Occupancy is off limits: OCCUPIED is
// owned by the reservation transaction, so admin edits cannot set or clear it.
func (r *SlotRepository) Update(ctx context.Context, id string, in domain.UpdateSlotInput) (*domain.Slot, error) {
	if in.Status != nil && *in.Status == domain.SlotStatusOccupied {
		return nil, fmt.Errorf("%w: slot status OCCUPIED is set by bookings only", domain.ErrValidation)
	}

	query := `UPDATE slots
			  SET slot_number = COALESCE($2, slot_number),
				  type        = COALESCE($3, type),
				  callsign    = COALESCE($4, callsign),
				  aircraft    = COALESCE($5, aircraft),
				  status      = COALESCE($6, status),
				  updated_at  = now()
			  WHERE id = $1 AND status <> $7
			  RETURNING ` + slotColumns

	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query, id,
		in.SlotNumber, (*string)(in.Type), in.Callsign, in.Aircraft,
		(*string)(in.Status), domain.SlotStatusOccupied,
	)
	if err != nil {
		return nil, fmt.Errorf("update slot: %w", err)
	}

	var s domain.Slot
	if err = scanSlot(row.Scan, &s); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, r.notFoundOrOccupied(ctx, id)
		}
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, fmt.Errorf("%w: slot number already exists for this event and type", domain.ErrValidation)
		}
		return nil, fmt.Errorf("scan updated slot: %w", err)
	}

	return &s, nil
}

// Delete refuses to remove a slot that currently backs an active booking.
func (r *SlotRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM slots WHERE id = $1 AND status <> $2`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, domain.SlotStatusOccupied)
	if err != nil {
		return fmt.Errorf("delete slot: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete slot rows affected: %w", err)
	}
	if n == 0 {
		return r.notFoundOrOccupied(ctx, id)
	}

	return nil
}

func (r *SlotRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.Slot, error) {
	query := `SELECT ` + slotColumns + `
			  FROM slots
			  WHERE event_id = $1
			  ORDER BY type, slot_number`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	defer rows.Close()

	var res []*domain.Slot
	for rows.Next() {
		var s domain.Slot
		if err = scanSlot(rows.Scan, &s); err != nil {
			return nil, fmt.Errorf("scan slot: %w", err)
		}
		res = append(res, &s)
	}

	return res, rows.Err()
}

// notFoundOrOccupied tells the two zero-rows cases apart.
func (r *SlotRepository) notFoundOrOccupied(ctx context.Context, id string) error {
	var status domain.SlotStatus
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, `SELECT status FROM slots WHERE id = $1`, id)
	if err != nil {
		return domain.ErrSlotNotFound
	}
	if err := row.Scan(&status); err != nil {
		return domain.ErrSlotNotFound
	}
	if status == domain.SlotStatusOccupied {
		return domain.ErrSlotOccupied
	}
	return domain.ErrSlotNotFound
}

func scanSlot(scan func(...any) error, s *domain.Slot) error {
	return scan(
		&s.ID, &s.EventID, &s.SlotNumber, &s.Type, &s.Callsign, &s.Aircraft,
		&s.Status, &s.CreatedAt, &s.UpdatedAt,
	)
}
