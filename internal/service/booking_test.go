package service

import (
	"context"
	"testing"
	"time"

	"github.com/fatimaaziz27/busbooker/internal/domain"
	"github.com/fatimaaziz27/busbooker/internal/service/ports/mocks"
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

func testBus() *domain.Bus {
	return &domain.Bus{
		ID:             1,
		Route:          "North Nazimabad - Power House",
		Time:           "09:00 AM",
		Fare:           500,
		TotalSeats:     40,
		AvailableSeats: 40,
	}
}

func TestBookingService_Create_Success(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	busRepo := mocks.NewMockBusRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, busRepo, notifier, log)

	busRepo.EXPECT().GetByID(mock.Anything, 1).Return(testBus(), nil)
	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyBookingCreated(mock.Anything, mock.Anything).Return()

	booking, err := svc.Create(context.Background(), domain.CreateBookingInput{
		Name:  "Fatima Aziz",
		BusID: 1,
		Seats: 2,
	})

	require.NoError(t, err)
	assert.Equal(t, "Fatima Aziz", booking.Name)
	assert.Equal(t, 1, booking.BusID)
	assert.Equal(t, 2, booking.Seats)
	assert.Equal(t, 1000, booking.TotalFare)
	assert.Equal(t, "North Nazimabad - Power House", booking.Route)
	assert.Equal(t, "09:00 AM", booking.Time)
	assert.NotEmpty(t, booking.ID)
	assert.False(t, booking.CreatedAt.IsZero())

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Create_TrimsName(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	busRepo := mocks.NewMockBusRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, busRepo, notifier, log)

	busRepo.EXPECT().GetByID(mock.Anything, 1).Return(testBus(), nil)
	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyBookingCreated(mock.Anything, mock.Anything).Return()

	booking, err := svc.Create(context.Background(), domain.CreateBookingInput{
		Name:  "  Fatima Aziz  ",
		BusID: 1,
		Seats: 1,
	})

	require.NoError(t, err)
	assert.Equal(t, "Fatima Aziz", booking.Name)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Create_EmptyName(t *testing.T) {
	svc := NewBookingService(nil, nil, nil, newTestLogger(t))

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		Name:  "   ",
		BusID: 1,
		Seats: 1,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Create_NonPositiveSeats(t *testing.T) {
	svc := NewBookingService(nil, nil, nil, newTestLogger(t))

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		Name:  "Fatima Aziz",
		BusID: 1,
		Seats: 0,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Create_BusNotFound(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	busRepo := mocks.NewMockBusRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, busRepo, notifier, log)

	busRepo.EXPECT().GetByID(mock.Anything, 999).Return(nil, domain.ErrBusNotFound)

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		Name:  "Y",
		BusID: 999,
		Seats: 1,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBusNotFound)
}

func TestBookingService_Create_NotEnoughSeats(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	busRepo := mocks.NewMockBusRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, busRepo, notifier, log)

	busRepo.EXPECT().GetByID(mock.Anything, 1).Return(testBus(), nil)
	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrNotEnoughSeats)

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		Name:  "X",
		BusID: 1,
		Seats: 39,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotEnoughSeats)
}

func TestBookingService_List_Success(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	busRepo := mocks.NewMockBusRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, busRepo, notifier, log)

	bookings := []*domain.Booking{
		{ID: "BK20250101120000", Name: "Fatima Aziz", BusID: 1, Seats: 2},
	}
	bookingRepo.EXPECT().List(mock.Anything).Return(bookings, nil)

	result, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 1)
}

func TestBookingService_Cancel_Success(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	busRepo := mocks.NewMockBusRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, busRepo, notifier, log)

	cancelled := &domain.Booking{
		ID:    "BK20250101120000",
		Name:  "Fatima Aziz",
		BusID: 1,
		Seats: 2,
	}
	bookingRepo.EXPECT().CancelByName(mock.Anything, "Fatima Aziz").Return(cancelled, nil)
	notifier.EXPECT().NotifyBookingCancelled(mock.Anything, cancelled).Return()

	booking, err := svc.Cancel(context.Background(), "Fatima Aziz")

	require.NoError(t, err)
	assert.Equal(t, cancelled.ID, booking.ID)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Cancel_TrimsName(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	busRepo := mocks.NewMockBusRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, busRepo, notifier, log)

	cancelled := &domain.Booking{ID: "BK20250101120000", Name: "Fatima Aziz"}
	bookingRepo.EXPECT().CancelByName(mock.Anything, "Fatima Aziz").Return(cancelled, nil)
	notifier.EXPECT().NotifyBookingCancelled(mock.Anything, cancelled).Return()

	_, err := svc.Cancel(context.Background(), "  Fatima Aziz ")

	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Cancel_EmptyName(t *testing.T) {
	svc := NewBookingService(nil, nil, nil, newTestLogger(t))

	_, err := svc.Cancel(context.Background(), "  ")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Cancel_NotFound(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	busRepo := mocks.NewMockBusRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, busRepo, notifier, log)

	bookingRepo.EXPECT().CancelByName(mock.Anything, "Nobody").Return(nil, domain.ErrBookingNotFound)

	_, err := svc.Cancel(context.Background(), "Nobody")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}
