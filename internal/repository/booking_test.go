package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"

	"github.com/JAL-Virtual/jal-bookings-events-sub000/internal/domain"
)

func newMockDB(t *testing.T) (*dbpg.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &dbpg.DB{Master: db}, mock
}

func testBooking(slotID *string) *domain.Booking {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	return &domain.Booking{
		ID:         "b1",
		EventID:    "e1",
		SlotID:     slotID,
		PilotID:    "p1",
		PilotName:  "Kenji Sato",
		PilotEmail: "kenji@example.com",
		Status:     domain.BookingStatusConfirmed,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestBookingRepository_Create_Success(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT status FROM events").
		WithArgs("e1").
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("ACTIVE"))
	mock.ExpectQuery("SELECT EXISTS").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec("INSERT INTO bookings").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE events").
		WithArgs("e1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Create(context.Background(), testBooking(nil))

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_Create_WithSlot(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepo(db)

	slotID := "s1"

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT status FROM events").
		WithArgs("e1").
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("ACTIVE"))
	mock.ExpectQuery("SELECT event_id, status FROM slots").
		WithArgs("s1").
		WillReturnRows(sqlmock.NewRows([]string{"event_id", "status"}).AddRow("e1", "AVAILABLE"))
	mock.ExpectQuery("SELECT EXISTS").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec("INSERT INTO bookings").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE slots").
		WithArgs("s1", "OCCUPIED", "AVAILABLE").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE events").
		WithArgs("e1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Create(context.Background(), testBooking(&slotID))

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_Create_EventNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT status FROM events").
		WithArgs("e1").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	err := repo.Create(context.Background(), testBooking(nil))

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_Create_EventNotBookable(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT status FROM events").
		WithArgs("e1").
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("CANCELLED"))
	mock.ExpectRollback()

	err := repo.Create(context.Background(), testBooking(nil))

	assert.ErrorIs(t, err, domain.ErrEventNotBookable)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_Create_SlotMismatch(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepo(db)

	slotID := "s1"

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT status FROM events").
		WithArgs("e1").
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("ACTIVE"))
	mock.ExpectQuery("SELECT event_id, status FROM slots").
		WithArgs("s1").
		WillReturnRows(sqlmock.NewRows([]string{"event_id", "status"}).AddRow("other-event", "AVAILABLE"))
	mock.ExpectRollback()

	err := repo.Create(context.Background(), testBooking(&slotID))

	assert.ErrorIs(t, err, domain.ErrSlotMismatch)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_Create_SlotTaken(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepo(db)

	slotID := "s1"

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT status FROM events").
		WithArgs("e1").
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("ACTIVE"))
	mock.ExpectQuery("SELECT event_id, status FROM slots").
		WithArgs("s1").
		WillReturnRows(sqlmock.NewRows([]string{"event_id", "status"}).AddRow("e1", "OCCUPIED"))
	mock.ExpectRollback()

	err := repo.Create(context.Background(), testBooking(&slotID))

	assert.ErrorIs(t, err, domain.ErrSlotUnavailable)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_Create_Duplicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT status FROM events").
		WithArgs("e1").
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("ACTIVE"))
	mock.ExpectQuery("SELECT EXISTS").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectRollback()

	err := repo.Create(context.Background(), testBooking(nil))

	assert.ErrorIs(t, err, domain.ErrAlreadyBooked)
	require.NoError(t, mock.ExpectationsWereMet())
}

// Another transaction occupied the slot between its status read and the
// conditional update; the zero rows-affected result must roll everything back.
func TestBookingRepository_Create_SlotRace(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepo(db)

	slotID := "s1"

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT status FROM events").
		WithArgs("e1").
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("ACTIVE"))
	mock.ExpectQuery("SELECT event_id, status FROM slots").
		WithArgs("s1").
		WillReturnRows(sqlmock.NewRows([]string{"event_id", "status"}).AddRow("e1", "AVAILABLE"))
	mock.ExpectQuery("SELECT EXISTS").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec("INSERT INTO bookings").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE slots").
		WithArgs("s1", "OCCUPIED", "AVAILABLE").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.Create(context.Background(), testBooking(&slotID))

	assert.ErrorIs(t, err, domain.ErrSlotUnavailable)
	require.NoError(t, mock.ExpectationsWereMet())
}

// The capacity guard is the conditional increment itself: zero rows affected
// means the event was full, and the already-inserted booking rolls back.
func TestBookingRepository_Create_EventFull(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT status FROM events").
		WithArgs("e1").
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("ACTIVE"))
	mock.ExpectQuery("SELECT EXISTS").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec("INSERT INTO bookings").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE events").
		WithArgs("e1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.Create(context.Background(), testBooking(nil))

	assert.ErrorIs(t, err, domain.ErrEventFull)
	require.NoError(t, mock.ExpectationsWereMet())
}

func cancelBookingRow(slotID any, pilotID, status string) *sqlmock.Rows {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	return sqlmock.NewRows([]string{
		"id", "event_id", "slot_id", "pilot_id", "pilot_name",
		"pilot_email", "jal_id", "status", "created_at", "updated_at",
	}).AddRow("b1", "e1", slotID, pilotID, "Kenji Sato", "kenji@example.com", nil, status, now, now)
}

// Cancel locks the event row before releasing the slot, the same order the
// reservation transaction takes its locks in.
func TestBookingRepository_Cancel_Success(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id, event_id, slot_id").
		WithArgs("b1").
		WillReturnRows(cancelBookingRow("s1", "p1", "CONFIRMED"))
	mock.ExpectQuery("SELECT 1 FROM events").
		WithArgs("e1").
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))
	mock.ExpectExec("UPDATE bookings").
		WithArgs("b1", "CANCELLED").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE slots").
		WithArgs("s1", "AVAILABLE", "OCCUPIED").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE events").
		WithArgs("e1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	booking, err := repo.Cancel(context.Background(), "b1", "p1")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, booking.Status)
	require.NotNil(t, booking.SlotID)
	assert.Equal(t, "s1", *booking.SlotID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_Cancel_NoSlot(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id, event_id, slot_id").
		WithArgs("b1").
		WillReturnRows(cancelBookingRow(nil, "p1", "CONFIRMED"))
	mock.ExpectQuery("SELECT 1 FROM events").
		WithArgs("e1").
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))
	mock.ExpectExec("UPDATE bookings").
		WithArgs("b1", "CANCELLED").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE events").
		WithArgs("e1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	booking, err := repo.Cancel(context.Background(), "b1", "p1")

	require.NoError(t, err)
	assert.Nil(t, booking.SlotID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_Cancel_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id, event_id, slot_id").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	_, err := repo.Cancel(context.Background(), "missing", "p1")

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_Cancel_PilotMismatch(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id, event_id, slot_id").
		WithArgs("b1").
		WillReturnRows(cancelBookingRow(nil, "someone-else", "CONFIRMED"))
	mock.ExpectRollback()

	_, err := repo.Cancel(context.Background(), "b1", "p1")

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_Cancel_AlreadyCancelled(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id, event_id, slot_id").
		WithArgs("b1").
		WillReturnRows(cancelBookingRow(nil, "p1", "CANCELLED"))
	mock.ExpectRollback()

	_, err := repo.Cancel(context.Background(), "b1", "p1")

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
