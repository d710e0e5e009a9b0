package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/JAL-Virtual/jal-bookings-events-sub000/internal/domain"
	"github.com/JAL-Virtual/jal-bookings-events-sub000/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func waitForNotify(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("notification goroutine did not run")
	}
}

func newReservationService(t *testing.T) (*ReservationService, *mocks.MockBookingRepo, *mocks.MockEventRepo, *mocks.MockBookingNotifier, *mocks.MockEventCache) {
	t.Helper()
	bookingRepo := mocks.NewMockBookingRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	cache := mocks.NewMockEventCache(t)
	log := newTestLogger(t)

	svc := NewReservationService(bookingRepo, eventRepo, notifier, cache, log)
	return svc, bookingRepo, eventRepo, notifier, cache
}

func TestReservationService_Create_Success(t *testing.T) {
	svc, bookingRepo, eventRepo, notifier, cache := newReservationService(t)

	event := &domain.Event{ID: "e1", Name: "Tokyo Crossing", MaxPilots: 20}

	notified := make(chan struct{})
	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	cache.EXPECT().Invalidate(mock.Anything, "e1").Return()
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	notifier.EXPECT().NotifyBookingCreated(mock.Anything, mock.Anything, event).
		Run(func(context.Context, *domain.Booking, *domain.Event) { close(notified) }).
		Return()

	booking, err := svc.Create(context.Background(), domain.CreateBookingInput{
		EventID:    "e1",
		PilotID:    "p1",
		PilotName:  "Kenji Sato",
		PilotEmail: "kenji@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, booking.Status)
	assert.Equal(t, "e1", booking.EventID)
	assert.Equal(t, "p1", booking.PilotID)
	assert.Nil(t, booking.SlotID)
	assert.NotEmpty(t, booking.ID)

	waitForNotify(t, notified)
}

func TestReservationService_Create_WithSlot(t *testing.T) {
	svc, bookingRepo, eventRepo, notifier, cache := newReservationService(t)

	event := &domain.Event{ID: "e1", Name: "Tokyo Crossing"}
	slotID := "s1"

	notified := make(chan struct{})
	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	cache.EXPECT().Invalidate(mock.Anything, "e1").Return()
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	notifier.EXPECT().NotifyBookingCreated(mock.Anything, mock.Anything, event).
		Run(func(context.Context, *domain.Booking, *domain.Event) { close(notified) }).
		Return()

	booking, err := svc.Create(context.Background(), domain.CreateBookingInput{
		EventID:    "e1",
		SlotID:     &slotID,
		PilotID:    "p1",
		PilotName:  "Kenji Sato",
		PilotEmail: "kenji@example.com",
	})

	require.NoError(t, err)
	require.NotNil(t, booking.SlotID)
	assert.Equal(t, "s1", *booking.SlotID)

	waitForNotify(t, notified)
}

func TestReservationService_Create_MissingEventID(t *testing.T) {
	svc, _, _, _, _ := newReservationService(t)

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		PilotID:    "p1",
		PilotName:  "Kenji Sato",
		PilotEmail: "kenji@example.com",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReservationService_Create_MissingPilotName(t *testing.T) {
	svc, _, _, _, _ := newReservationService(t)

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		EventID:    "e1",
		PilotID:    "p1",
		PilotName:  "   ",
		PilotEmail: "kenji@example.com",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReservationService_Create_EmptySlotID(t *testing.T) {
	svc, _, _, _, _ := newReservationService(t)

	empty := ""
	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		EventID:    "e1",
		SlotID:     &empty,
		PilotID:    "p1",
		PilotName:  "Kenji Sato",
		PilotEmail: "kenji@example.com",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReservationService_Create_EventFull(t *testing.T) {
	svc, bookingRepo, _, _, _ := newReservationService(t)

	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrEventFull)

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		EventID:    "e1",
		PilotID:    "p1",
		PilotName:  "Kenji Sato",
		PilotEmail: "kenji@example.com",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventFull)
}

func TestReservationService_Create_AlreadyBooked(t *testing.T) {
	svc, bookingRepo, _, _, _ := newReservationService(t)

	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrAlreadyBooked)

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		EventID:    "e1",
		PilotID:    "p1",
		PilotName:  "Kenji Sato",
		PilotEmail: "kenji@example.com",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyBooked)
}

func TestReservationService_Create_SlotUnavailable(t *testing.T) {
	svc, bookingRepo, _, _, _ := newReservationService(t)

	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrSlotUnavailable)

	slotID := "s1"
	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		EventID:    "e1",
		SlotID:     &slotID,
		PilotID:    "p1",
		PilotName:  "Kenji Sato",
		PilotEmail: "kenji@example.com",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSlotUnavailable)
}

func TestReservationService_Cancel_Success(t *testing.T) {
	svc, bookingRepo, eventRepo, notifier, cache := newReservationService(t)

	booking := &domain.Booking{ID: "b1", EventID: "e1", PilotID: "p1", Status: domain.BookingStatusCancelled}
	event := &domain.Event{ID: "e1", Name: "Tokyo Crossing"}

	notified := make(chan struct{})
	bookingRepo.EXPECT().Cancel(mock.Anything, "b1", "p1").Return(booking, nil)
	cache.EXPECT().Invalidate(mock.Anything, "e1").Return()
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	notifier.EXPECT().NotifyBookingCancelled(mock.Anything, booking, event).
		Run(func(context.Context, *domain.Booking, *domain.Event) { close(notified) }).
		Return()

	err := svc.Cancel(context.Background(), "b1", "p1")

	require.NoError(t, err)
	waitForNotify(t, notified)
}

func TestReservationService_Cancel_NotFound(t *testing.T) {
	svc, bookingRepo, _, _, _ := newReservationService(t)

	bookingRepo.EXPECT().Cancel(mock.Anything, "b1", "p2").Return(nil, domain.ErrBookingNotFound)

	err := svc.Cancel(context.Background(), "b1", "p2")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestReservationService_Cancel_MissingArgs(t *testing.T) {
	svc, _, _, _, _ := newReservationService(t)

	err := svc.Cancel(context.Background(), "", "p1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReservationService_Cancel_NotifyEventLookupFails(t *testing.T) {
	svc, bookingRepo, eventRepo, _, cache := newReservationService(t)

	booking := &domain.Booking{ID: "b1", EventID: "e1", PilotID: "p1"}

	looked := make(chan struct{})
	bookingRepo.EXPECT().Cancel(mock.Anything, "b1", "p1").Return(booking, nil)
	cache.EXPECT().Invalidate(mock.Anything, "e1").Return()
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").
		Run(func(context.Context, string) { close(looked) }).
		Return(nil, errors.New("db error"))

	err := svc.Cancel(context.Background(), "b1", "p1")

	require.NoError(t, err) // notification failure never surfaces
	waitForNotify(t, looked)
}

func TestReservationService_ListByPilot_Success(t *testing.T) {
	svc, bookingRepo, _, _, _ := newReservationService(t)

	details := []*domain.BookingDetails{
		{
			Booking: domain.Booking{ID: "b1", EventID: "e1", PilotID: "p1", Status: domain.BookingStatusConfirmed},
			Event:   domain.Event{ID: "e1", Name: "Tokyo Crossing"},
		},
	}
	bookingRepo.EXPECT().ListByPilot(mock.Anything, "p1").Return(details, nil)

	result, err := svc.ListByPilot(context.Background(), "p1")

	require.NoError(t, err)
	assert.Len(t, result, 1)
}

func TestReservationService_ListByPilot_MissingID(t *testing.T) {
	svc, _, _, _, _ := newReservationService(t)

	_, err := svc.ListByPilot(context.Background(), "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReservationService_ListByEvent_Success(t *testing.T) {
	svc, bookingRepo, _, _, _ := newReservationService(t)

	bookings := []*domain.Booking{
		{ID: "b1", EventID: "e1", PilotID: "p1", Status: domain.BookingStatusConfirmed},
		{ID: "b2", EventID: "e1", PilotID: "p2", Status: domain.BookingStatusConfirmed},
	}
	bookingRepo.EXPECT().ListByEvent(mock.Anything, "e1").Return(bookings, nil)

	result, err := svc.ListByEvent(context.Background(), "e1")

	require.NoError(t, err)
	assert.Len(t, result, 2)
}
