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

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create commits a reservation as a single transaction. The event row (and
// the slot row, when the booking is pinned) is locked up front, so two
// requests racing for the last spot or the same slot serialize here: one
// commits, the other sees the conflict.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var eventStatus domain.EventStatus
	eventQuery := `SELECT status FROM events WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, eventQuery, b.EventID).Scan(&eventStatus); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("lock event: %w", err)
	}
	if eventStatus != domain.EventStatusActive {
		return domain.ErrEventNotBookable
	}

	if b.SlotID != nil {
		var slotEventID string
		var slotStatus domain.SlotStatus
		slotQuery := `SELECT event_id, status FROM slots WHERE id = $1 FOR UPDATE`
		if err = tx.QueryRowContext(ctx, slotQuery, *b.SlotID).Scan(&slotEventID, &slotStatus); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrSlotNotFound
			}
			return fmt.Errorf("lock slot: %w", err)
		}
		if slotEventID != b.EventID {
			return domain.ErrSlotMismatch
		}
		if slotStatus != domain.SlotStatusAvailable {
			return domain.ErrSlotUnavailable
		}
	}

	var exists bool
	dupQuery := `SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE event_id = $1 AND pilot_id = $2 AND status = ANY($3)
			  AND (($4::uuid IS NULL AND slot_id IS NULL) OR slot_id = $4)
		)`
	if err = tx.QueryRowContext(
		ctx, dupQuery, b.EventID, b.PilotID,
		pq.Array(domain.ActiveStatuses), b.SlotID,
	).Scan(&exists); err != nil {
		return fmt.Errorf("check duplicate booking: %w", err)
	}
	if exists {
		return domain.ErrAlreadyBooked
	}

	insertQuery := `INSERT INTO bookings (id, event_id, slot_id, pilot_id, pilot_name, pilot_email, jal_id, status, created_at, updated_at)
				    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err = tx.ExecContext(
		ctx, insertQuery,
		b.ID, b.EventID, b.SlotID, b.PilotID,
		b.PilotName, b.PilotEmail, b.JalID,
		b.Status, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrAlreadyBooked
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	if b.SlotID != nil {
		// Conditioned on AVAILABLE even though the row is locked: the
		// rows-affected check keeps the transition itself the guard.
		occupyQuery := `UPDATE slots
						SET status = $2, updated_at = now()
						WHERE id = $1 AND status = $3`
		res, err := tx.ExecContext(
			ctx, occupyQuery, *b.SlotID,
			domain.SlotStatusOccupied, domain.SlotStatusAvailable,
		)
		if err != nil {
			return fmt.Errorf("occupy slot: %w", err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return domain.ErrSlotUnavailable
		}
	}

	countQuery := `UPDATE events
				   SET current_bookings = current_bookings + 1, updated_at = now()
				   WHERE id = $1 AND current_bookings < max_pilots`
	res, err := tx.ExecContext(ctx, countQuery, b.EventID)
	if err != nil {
		return fmt.Errorf("increment bookings: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrEventFull
	}

	return tx.Commit()
}

// Cancel marks the booking cancelled and reverses the slot/counter updates in
// the same transaction. A booking that does not exist, is not active, or
// belongs to another pilot reports ErrBookingNotFound.
func (r *BookingRepository) Cancel(ctx context.Context, bookingID, pilotID string) (*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var b domain.Booking
	lockQuery := `SELECT id, event_id, slot_id, pilot_id, pilot_name, pilot_email, jal_id, status, created_at, updated_at
				  FROM bookings
				  WHERE id = $1
				  FOR UPDATE`
	err = tx.QueryRowContext(ctx, lockQuery, bookingID).Scan(
		&b.ID, &b.EventID, &b.SlotID, &b.PilotID,
		&b.PilotName, &b.PilotEmail, &b.JalID,
		&b.Status, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("lock booking: %w", err)
	}
	if b.PilotID != pilotID || !isActive(b.Status) {
		return nil, domain.ErrBookingNotFound
	}

	// Lock event before slot, same order as Create, so a concurrent
	// reservation on this event cannot deadlock against the cancel.
	var one int
	lockEventQuery := `SELECT 1 FROM events WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockEventQuery, b.EventID).Scan(&one); err != nil {
		return nil, fmt.Errorf("lock event: %w", err)
	}

	cancelQuery := `UPDATE bookings SET status = $2, updated_at = now() WHERE id = $1`
	if _, err = tx.ExecContext(ctx, cancelQuery, b.ID, domain.BookingStatusCancelled); err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}

	if b.SlotID != nil {
		releaseQuery := `UPDATE slots
						 SET status = $2, updated_at = now()
						 WHERE id = $1 AND status = $3`
		if _, err = tx.ExecContext(
			ctx, releaseQuery, *b.SlotID,
			domain.SlotStatusAvailable, domain.SlotStatusOccupied,
		); err != nil {
			return nil, fmt.Errorf("release slot: %w", err)
		}
	}

	// Floored at zero as a backstop; the invariant keeps it non-negative.
	decQuery := `UPDATE events
				 SET current_bookings = GREATEST(current_bookings - 1, 0), updated_at = now()
				 WHERE id = $1`
	if _, err = tx.ExecContext(ctx, decQuery, b.EventID); err != nil {
		return nil, fmt.Errorf("decrement bookings: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	b.Status = domain.BookingStatusCancelled
	return &b, nil
}

// ListByPilot returns the pilot's bookings joined with their event and slot,
// newest first.
func (r *BookingRepository) ListByPilot(ctx context.Context, pilotID string) ([]*domain.BookingDetails, error) {
	query := `SELECT b.id, b.event_id, b.slot_id, b.pilot_id, b.pilot_name, b.pilot_email, b.jal_id, b.status, b.created_at, b.updated_at,
					 e.id, e.name, e.description, e.departure_icao, e.arrival_icao, e.event_date,
					 e.route, e.airline, e.flight_number, e.max_pilots, e.current_bookings, e.status, e.created_at, e.updated_at,
					 s.id, s.event_id, s.slot_number, s.type, s.callsign, s.aircraft, s.status, s.created_at, s.updated_at
			  FROM bookings b
			  JOIN events e ON e.id = b.event_id
			  LEFT JOIN slots s ON s.id = b.slot_id
			  WHERE b.pilot_id = $1
			  ORDER BY b.created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, pilotID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by pilot: %w", err)
	}
	defer rows.Close()

	var res []*domain.BookingDetails
	for rows.Next() {
		var d domain.BookingDetails
		var slotID, slotEventID, slotType, slotStatus sql.NullString
		var slotCallsign, slotAircraft sql.NullString
		var slotNumber sql.NullInt64
		var slotCreated, slotUpdated sql.NullTime

		if err = rows.Scan(
			&d.Booking.ID, &d.Booking.EventID, &d.Booking.SlotID, &d.Booking.PilotID,
			&d.Booking.PilotName, &d.Booking.PilotEmail, &d.Booking.JalID,
			&d.Booking.Status, &d.Booking.CreatedAt, &d.Booking.UpdatedAt,
			&d.Event.ID, &d.Event.Name, &d.Event.Description,
			&d.Event.DepartureICAO, &d.Event.ArrivalICAO, &d.Event.EventDate,
			&d.Event.Route, &d.Event.Airline, &d.Event.FlightNumber,
			&d.Event.MaxPilots, &d.Event.CurrentBookings, &d.Event.Status,
			&d.Event.CreatedAt, &d.Event.UpdatedAt,
			&slotID, &slotEventID, &slotNumber, &slotType,
			&slotCallsign, &slotAircraft, &slotStatus, &slotCreated, &slotUpdated,
		); err != nil {
			return nil, fmt.Errorf("scan booking details: %w", err)
		}

		if slotID.Valid {
			d.Slot = &domain.Slot{
				ID:         slotID.String,
				EventID:    slotEventID.String,
				SlotNumber: int(slotNumber.Int64),
				Type:       domain.SlotType(slotType.String),
				Callsign:   slotCallsign.String,
				Aircraft:   slotAircraft.String,
				Status:     domain.SlotStatus(slotStatus.String),
				CreatedAt:  slotCreated.Time,
				UpdatedAt:  slotUpdated.Time,
			}
		}

		res = append(res, &d)
	}

	return res, rows.Err()
}

// ListByEvent returns the event's active bookings, newest first.
func (r *BookingRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.Booking, error) {
	query := `SELECT id, event_id, slot_id, pilot_id, pilot_name, pilot_email, jal_id, status, created_at, updated_at
			  FROM bookings
			  WHERE event_id = $1 AND status = ANY($2)
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID, pq.Array(domain.ActiveStatuses))
	if err != nil {
		return nil, fmt.Errorf("list bookings by event: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err = rows.Scan(
			&b.ID, &b.EventID, &b.SlotID, &b.PilotID,
			&b.PilotName, &b.PilotEmail, &b.JalID,
			&b.Status, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, &b)
	}

	return res, rows.Err()
}

func isActive(s domain.BookingStatus) bool {
	for _, a := range domain.ActiveStatuses {
		if s == a {
			return true
		}
	}
	return false
}
