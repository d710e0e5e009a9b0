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

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const eventColumns = `id, name, description, departure_icao, arrival_icao, event_date,
					  route, airline, flight_number, max_pilots, current_bookings, status, created_at, updated_at`

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (id, name, description, departure_icao, arrival_icao, event_date,
								  route, airline, flight_number, max_pilots, current_bookings, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Name, e.Description, e.DepartureICAO, e.ArrivalICAO, e.EventDate,
		e.Route, e.Airline, e.FlightNumber, e.MaxPilots, e.CurrentBookings,
		e.Status, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	var e domain.Event
	if err = scanEvent(row.Scan, &e); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return &e, nil
}

// Update applies the non-nil fields. The bookings counter is never touched
// here; only the reservation transaction mutates it.
func (r *EventRepository) Update(ctx context.Context, id string, in domain.UpdateEventInput) (*domain.Event, error) {
	query := `UPDATE events
			  SET name           = COALESCE($2, name),
				  description    = COALESCE($3, description),
				  departure_icao = COALESCE($4, departure_icao),
				  arrival_icao   = COALESCE($5, arrival_icao),
				  event_date     = COALESCE($6, event_date),
				  route          = COALESCE($7, route),
				  airline        = COALESCE($8, airline),
				  flight_number  = COALESCE($9, flight_number),
				  max_pilots     = COALESCE($10, max_pilots),
				  status         = COALESCE($11, status),
				  updated_at     = now()
			  WHERE id = $1
			  RETURNING ` + eventColumns

	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query, id,
		in.Name, in.Description, in.DepartureICAO, in.ArrivalICAO, in.EventDate,
		in.Route, in.Airline, in.FlightNumber, in.MaxPilots, (*string)(in.Status),
	)
	if err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}

	var e domain.Event
	if err = scanEvent(row.Scan, &e); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23514" {
			return nil, fmt.Errorf("%w: max_pilots below current bookings", domain.ErrValidation)
		}
		return nil, fmt.Errorf("scan updated event: %w", err)
	}

	return &e, nil
}

// Delete removes the event; slots and bookings go with it via ON DELETE CASCADE.
func (r *EventRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete event rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}

func (r *EventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY event_date DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		var e domain.Event
		if err = scanEvent(rows.Scan, &e); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, &e)
	}

	return res, rows.Err()
}

// GetDetails returns the event plus a live available count aggregated from
// active bookings.
func (r *EventRepository) GetDetails(ctx context.Context, eventID string) (*domain.EventDetails, error) {
	query := `
		SELECT
			e.id, e.name, e.description, e.departure_icao, e.arrival_icao, e.event_date,
			e.route, e.airline, e.flight_number, e.max_pilots, e.current_bookings, e.status,
			e.created_at, e.updated_at,
			e.max_pilots - COUNT(b.id) AS available_pilots
		FROM events e
		LEFT JOIN bookings b
			ON b.event_id = e.id
			AND b.status = ANY($2)
		WHERE e.id = $1
		GROUP BY e.id`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID, pq.Array(domain.ActiveStatuses))
	if err != nil {
		return nil, fmt.Errorf("get event details: %w", err)
	}

	var d domain.EventDetails
	err = row.Scan(
		&d.Event.ID, &d.Event.Name, &d.Event.Description,
		&d.Event.DepartureICAO, &d.Event.ArrivalICAO, &d.Event.EventDate,
		&d.Event.Route, &d.Event.Airline, &d.Event.FlightNumber,
		&d.Event.MaxPilots, &d.Event.CurrentBookings, &d.Event.Status,
		&d.Event.CreatedAt, &d.Event.UpdatedAt,
		&d.AvailablePilots,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event details: %w", err)
	}

	return &d, nil
}

// CompleteElapsed flips ACTIVE events past their date to COMPLETED and
// returns them.
func (r *EventRepository) CompleteElapsed(ctx context.Context) ([]*domain.Event, error) {
	query := `UPDATE events
			  SET status = $2, updated_at = now()
			  WHERE status = $1 AND event_date < now()
			  RETURNING ` + eventColumns

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.EventStatusActive, domain.EventStatusCompleted,
	)
	if err != nil {
		return nil, fmt.Errorf("complete elapsed events: %w", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		var e domain.Event
		if err = scanEvent(rows.Scan, &e); err != nil {
			return nil, fmt.Errorf("scan completed event: %w", err)
		}
		res = append(res, &e)
	}

	return res, rows.Err()
}

func scanEvent(scan func(...any) error, e *domain.Event) error {
	return scan(
		&e.ID, &e.Name, &e.Description, &e.DepartureICAO, &e.ArrivalICAO, &e.EventDate,
		&e.Route, &e.Airline, &e.FlightNumber, &e.MaxPilots, &e.CurrentBookings,
		&e.Status, &e.CreatedAt, &e.UpdatedAt,
	)
}
