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
)

func newEventService(t *testing.T) (*EventService, *mocks.MockEventRepo, *mocks.MockSlotRepo, *mocks.MockBookingRepo, *mocks.MockAuditRepo, *mocks.MockEventCache) {
	t.Helper()
	eventRepo := mocks.NewMockEventRepo(t)
	slotRepo := mocks.NewMockSlotRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)
	auditRepo := mocks.NewMockAuditRepo(t)
	cache := mocks.NewMockEventCache(t)
	log := newTestLogger(t)

	svc := NewEventService(eventRepo, slotRepo, bookingRepo, auditRepo, cache, log)
	return svc, eventRepo, slotRepo, bookingRepo, auditRepo, cache
}

func validCreateEventInput() domain.CreateEventInput {
	return domain.CreateEventInput{
		Name:          "Tokyo Crossing",
		Description:   "Group flight over the bay",
		DepartureICAO: "RJTT",
		ArrivalICAO:   "RJAA",
		EventDate:     time.Now().Add(48 * time.Hour),
		Route:         "LAXAS Y16 SPENS",
		Airline:       "JAL",
		FlightNumber:  "JL123",
		MaxPilots:     20,
	}
}

func TestEventService_Create_Success(t *testing.T) {
	svc, eventRepo, _, _, auditRepo, cache := newEventService(t)

	eventRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	cache.EXPECT().Invalidate(mock.Anything, mock.Anything).Return()
	auditRepo.EXPECT().Record(mock.Anything, mock.Anything).Return(nil)

	event, err := svc.Create(context.Background(), "admin", validCreateEventInput())

	require.NoError(t, err)
	assert.Equal(t, "Tokyo Crossing", event.Name)
	assert.Equal(t, "RJTT", event.DepartureICAO)
	assert.Equal(t, "RJAA", event.ArrivalICAO)
	assert.Equal(t, 20, event.MaxPilots)
	assert.Equal(t, 0, event.CurrentBookings)
	assert.Equal(t, domain.EventStatusActive, event.Status)
	assert.NotEmpty(t, event.ID)
}

func TestEventService_Create_EmptyName(t *testing.T) {
	svc, _, _, _, _, _ := newEventService(t)

	in := validCreateEventInput()
	in.Name = ""

	_, err := svc.Create(context.Background(), "admin", in)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_Create_MissingAirports(t *testing.T) {
	svc, _, _, _, _, _ := newEventService(t)

	in := validCreateEventInput()
	in.ArrivalICAO = ""

	_, err := svc.Create(context.Background(), "admin", in)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_Create_ZeroCapacity(t *testing.T) {
	svc, _, _, _, _, _ := newEventService(t)

	in := validCreateEventInput()
	in.MaxPilots = 0

	_, err := svc.Create(context.Background(), "admin", in)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_Create_PastDate(t *testing.T) {
	svc, _, _, _, _, _ := newEventService(t)

	in := validCreateEventInput()
	in.EventDate = time.Now().Add(-time.Hour)

	_, err := svc.Create(context.Background(), "admin", in)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_Create_RepoError(t *testing.T) {
	svc, eventRepo, _, _, _, _ := newEventService(t)

	repoErr := errors.New("db error")
	eventRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(repoErr)

	_, err := svc.Create(context.Background(), "admin", validCreateEventInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, repoErr)
}

func TestEventService_Update_Success(t *testing.T) {
	svc, eventRepo, _, _, auditRepo, cache := newEventService(t)

	name := "Osaka Night Ops"
	updated := &domain.Event{ID: "e1", Name: name}

	eventRepo.EXPECT().Update(mock.Anything, "e1", mock.Anything).Return(updated, nil)
	cache.EXPECT().Invalidate(mock.Anything, "e1").Return()
	auditRepo.EXPECT().Record(mock.Anything, mock.Anything).Return(nil)

	event, err := svc.Update(context.Background(), "staff", "e1", domain.UpdateEventInput{Name: &name})

	require.NoError(t, err)
	assert.Equal(t, name, event.Name)
}

func TestEventService_Update_InvalidStatus(t *testing.T) {
	svc, _, _, _, _, _ := newEventService(t)

	bad := domain.EventStatus("PAUSED")
	_, err := svc.Update(context.Background(), "staff", "e1", domain.UpdateEventInput{Status: &bad})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_Update_InvalidCapacity(t *testing.T) {
	svc, _, _, _, _, _ := newEventService(t)

	zero := 0
	_, err := svc.Update(context.Background(), "staff", "e1", domain.UpdateEventInput{MaxPilots: &zero})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_Update_NotFound(t *testing.T) {
	svc, eventRepo, _, _, _, _ := newEventService(t)

	eventRepo.EXPECT().Update(mock.Anything, "missing", mock.Anything).Return(nil, domain.ErrEventNotFound)

	_, err := svc.Update(context.Background(), "staff", "missing", domain.UpdateEventInput{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventService_Delete_Success(t *testing.T) {
	svc, eventRepo, _, _, auditRepo, cache := newEventService(t)

	eventRepo.EXPECT().Delete(mock.Anything, "e1").Return(nil)
	cache.EXPECT().Invalidate(mock.Anything, "e1").Return()
	auditRepo.EXPECT().Record(mock.Anything, mock.Anything).Return(nil)

	err := svc.Delete(context.Background(), "admin", "e1")

	require.NoError(t, err)
}

func TestEventService_Delete_NotFound(t *testing.T) {
	svc, eventRepo, _, _, _, _ := newEventService(t)

	eventRepo.EXPECT().Delete(mock.Anything, "missing").Return(domain.ErrEventNotFound)

	err := svc.Delete(context.Background(), "admin", "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventService_GetDetails_CacheHit(t *testing.T) {
	svc, _, _, _, _, cache := newEventService(t)

	cached := &domain.EventDetails{
		Event:           domain.Event{ID: "e1", Name: "Tokyo Crossing"},
		AvailablePilots: 5,
	}
	cache.EXPECT().GetDetails(mock.Anything, "e1").Return(cached, true)

	result, err := svc.GetDetails(context.Background(), "e1")

	require.NoError(t, err)
	assert.Equal(t, cached, result)
}

func TestEventService_GetDetails_CacheMiss(t *testing.T) {
	svc, eventRepo, slotRepo, bookingRepo, _, cache := newEventService(t)

	details := &domain.EventDetails{
		Event:           domain.Event{ID: "e1", Name: "Tokyo Crossing", MaxPilots: 20},
		AvailablePilots: 18,
	}
	slots := []*domain.Slot{
		{ID: "s1", EventID: "e1", SlotNumber: 1, Type: domain.SlotTypeDeparture},
	}
	bookings := []*domain.Booking{
		{ID: "b1", EventID: "e1", PilotID: "p1", Status: domain.BookingStatusConfirmed},
		{ID: "b2", EventID: "e1", PilotID: "p2", Status: domain.BookingStatusConfirmed},
	}

	cache.EXPECT().GetDetails(mock.Anything, "e1").Return(nil, false)
	eventRepo.EXPECT().GetDetails(mock.Anything, "e1").Return(details, nil)
	slotRepo.EXPECT().ListByEvent(mock.Anything, "e1").Return(slots, nil)
	bookingRepo.EXPECT().ListByEvent(mock.Anything, "e1").Return(bookings, nil)
	cache.EXPECT().SetDetails(mock.Anything, details).Return()

	result, err := svc.GetDetails(context.Background(), "e1")

	require.NoError(t, err)
	assert.Equal(t, 18, result.AvailablePilots)
	assert.Len(t, result.Slots, 1)
	assert.Len(t, result.Bookings, 2)
}

func TestEventService_GetDetails_NotFound(t *testing.T) {
	svc, eventRepo, _, _, _, cache := newEventService(t)

	cache.EXPECT().GetDetails(mock.Anything, "missing").Return(nil, false)
	eventRepo.EXPECT().GetDetails(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	_, err := svc.GetDetails(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventService_List_CacheHit(t *testing.T) {
	svc, _, _, _, _, cache := newEventService(t)

	events := []*domain.Event{{ID: "e1", Name: "Tokyo Crossing"}}
	cache.EXPECT().GetList(mock.Anything).Return(events, true)

	result, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 1)
}

func TestEventService_List_CacheMiss(t *testing.T) {
	svc, eventRepo, _, _, _, cache := newEventService(t)

	events := []*domain.Event{
		{ID: "e1", Name: "Tokyo Crossing"},
		{ID: "e2", Name: "Osaka Night Ops"},
	}
	cache.EXPECT().GetList(mock.Anything).Return(nil, false)
	eventRepo.EXPECT().List(mock.Anything).Return(events, nil)
	cache.EXPECT().SetList(mock.Anything, events).Return()

	result, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestEventService_List_Error(t *testing.T) {
	svc, eventRepo, _, _, _, cache := newEventService(t)

	cache.EXPECT().GetList(mock.Anything).Return(nil, false)
	eventRepo.EXPECT().List(mock.Anything).Return(nil, errors.New("db error"))

	_, err := svc.List(context.Background())

	require.Error(t, err)
}

func TestEventService_CompleteElapsed_Success(t *testing.T) {
	svc, eventRepo, _, _, _, cache := newEventService(t)

	completed := []*domain.Event{
		{ID: "e1", Status: domain.EventStatusCompleted},
		{ID: "e2", Status: domain.EventStatusCompleted},
	}
	eventRepo.EXPECT().CompleteElapsed(mock.Anything).Return(completed, nil)
	cache.EXPECT().Invalidate(mock.Anything, "e1", "e2").Return()

	result, err := svc.CompleteElapsed(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestEventService_CompleteElapsed_NoneElapsed(t *testing.T) {
	svc, eventRepo, _, _, _, _ := newEventService(t)

	eventRepo.EXPECT().CompleteElapsed(mock.Anything).Return(nil, nil)

	result, err := svc.CompleteElapsed(context.Background())

	require.NoError(t, err)
	assert.Empty(t, result)
}
