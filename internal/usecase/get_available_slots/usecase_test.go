package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mntdherm/CW-BookingService/internal/domain"
	scheduleRepo "github.com/mntdherm/CW-BookingService/internal/infra/storage/schedule"
	"github.com/mntdherm/CW-BookingService/internal/integrations/catalogservice"
	"github.com/mntdherm/CW-BookingService/pkg/types"
)

// ---------- Fakes ----------

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) GetOverlapping(_ context.Context, vendorID int64, interval domain.TimeInterval) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if b.VendorID == vendorID && interval.Overlaps(b.Interval()) {
			result = append(result, b)
		}
	}
	return result, nil
}

type fakeScheduleRepo struct {
	windows map[time.Weekday]*domain.OperatingWindow
	blocked []*domain.BlockedTime
}

func (f *fakeScheduleRepo) GetOperatingWindow(_ context.Context, vendorID int64, weekday time.Weekday) (*domain.OperatingWindow, error) {
	w, ok := f.windows[weekday]
	if !ok {
		return nil, scheduleRepo.ErrWindowNotFound
	}
	return w, nil
}

func (f *fakeScheduleRepo) ListBlockedOverlapping(_ context.Context, vendorID int64, interval domain.TimeInterval) ([]*domain.BlockedTime, error) {
	result := make([]*domain.BlockedTime, 0)
	for _, b := range f.blocked {
		if b.VendorID == vendorID && interval.Overlaps(b.Interval()) {
			result = append(result, b)
		}
	}
	return result, nil
}

type fakeCatalog struct {
	services []*catalogservice.Service
	err      error
}

func (f *fakeCatalog) GetServices(_ context.Context, vendorID int64, serviceIDs []int64) ([]*catalogservice.Service, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.services, nil
}

// ---------- Helpers ----------

// 2026-03-02 - понедельник
var monday = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func mondayWindow(open, close string) map[time.Weekday]*domain.OperatingWindow {
	return map[time.Weekday]*domain.OperatingWindow{
		time.Monday: {
			VendorID:  1,
			Weekday:   time.Monday,
			OpenTime:  types.TimeString(open),
			CloseTime: types.TimeString(close),
		},
	}
}

func newUseCase(bookings *fakeBookingRepo, schedule *fakeScheduleRepo, catalog *fakeCatalog) *UseCase {
	return NewUseCase(bookings, schedule, catalog, nopLogger{})
}

// ---------- Tests ----------

func TestExecuteHappyPath(t *testing.T) {
	catalog := &fakeCatalog{services: []*catalogservice.Service{
		{ID: 10, VendorID: 1, Name: "Exterior wash", Price: 25, DurationMinutes: 30, IsVisible: true},
		{ID: 11, VendorID: 1, Name: "Interior detail", Price: 45, DurationMinutes: 30, IsVisible: true},
	}}
	schedule := &fakeScheduleRepo{windows: mondayWindow("09:00", "12:00")}
	uc := newUseCase(&fakeBookingRepo{}, schedule, catalog)

	resp, err := uc.Execute(context.Background(), &Request{
		VendorID:   1,
		Date:       monday,
		ServiceIDs: []int64{10, 11},
	})

	require.NoError(t, err)
	require.Equal(t, 60, resp.DurationMinutes)
	require.Len(t, resp.Slots, 5)
	require.Equal(t, at(9, 0), resp.Slots[0].StartTime)
	require.Equal(t, at(12, 0), resp.Slots[4].EndTime)
	for _, s := range resp.Slots {
		require.True(t, s.Available)
	}
}

func TestExecuteOccupiedSlotReducesAvailability(t *testing.T) {
	catalog := &fakeCatalog{services: []*catalogservice.Service{
		{ID: 10, VendorID: 1, Name: "Exterior wash", Price: 25, DurationMinutes: 60, IsVisible: true},
	}}
	schedule := &fakeScheduleRepo{windows: mondayWindow("09:00", "12:00")}
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		{VendorID: 1, StartTime: at(10, 0), EndTime: at(11, 0), Status: domain.StatusPending},
	}}
	uc := newUseCase(bookings, schedule, catalog)

	resp, err := uc.Execute(context.Background(), &Request{
		VendorID:   1,
		Date:       monday,
		ServiceIDs: []int64{10},
	})

	require.NoError(t, err)
	available := 0
	for _, s := range resp.Slots {
		if s.Available {
			available++
		}
	}
	// Заняты 09:30, 10:00, 10:30; свободны 09:00 и 11:00
	require.Equal(t, 2, available)
}

func TestExecuteCancelledBookingDoesNotReduceAvailability(t *testing.T) {
	catalog := &fakeCatalog{services: []*catalogservice.Service{
		{ID: 10, VendorID: 1, Name: "Exterior wash", Price: 25, DurationMinutes: 60, IsVisible: true},
	}}
	schedule := &fakeScheduleRepo{windows: mondayWindow("09:00", "12:00")}
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		{VendorID: 1, StartTime: at(10, 0), EndTime: at(11, 0), Status: domain.StatusCancelled},
	}}
	uc := newUseCase(bookings, schedule, catalog)

	resp, err := uc.Execute(context.Background(), &Request{
		VendorID:   1,
		Date:       monday,
		ServiceIDs: []int64{10},
	})

	require.NoError(t, err)
	for _, s := range resp.Slots {
		require.True(t, s.Available)
	}
}

func TestExecuteClosedDayReturnsEmptySlots(t *testing.T) {
	catalog := &fakeCatalog{services: []*catalogservice.Service{
		{ID: 10, VendorID: 1, Name: "Exterior wash", Price: 25, DurationMinutes: 30, IsVisible: true},
	}}
	// Записи на понедельник нет - день закрыт
	schedule := &fakeScheduleRepo{windows: map[time.Weekday]*domain.OperatingWindow{}}
	uc := newUseCase(&fakeBookingRepo{}, schedule, catalog)

	resp, err := uc.Execute(context.Background(), &Request{
		VendorID:   1,
		Date:       monday,
		ServiceIDs: []int64{10},
	})

	require.NoError(t, err)
	require.Empty(t, resp.Slots)
}

func TestExecuteExplicitlyClosedDay(t *testing.T) {
	catalog := &fakeCatalog{services: []*catalogservice.Service{
		{ID: 10, VendorID: 1, Name: "Exterior wash", Price: 25, DurationMinutes: 30, IsVisible: true},
	}}
	schedule := &fakeScheduleRepo{windows: map[time.Weekday]*domain.OperatingWindow{
		time.Monday: {VendorID: 1, Weekday: time.Monday, IsClosed: true},
	}}
	uc := newUseCase(&fakeBookingRepo{}, schedule, catalog)

	resp, err := uc.Execute(context.Background(), &Request{
		VendorID:   1,
		Date:       monday,
		ServiceIDs: []int64{10},
	})

	require.NoError(t, err)
	require.Empty(t, resp.Slots)
}

func TestExecuteUnknownServiceRejected(t *testing.T) {
	catalog := &fakeCatalog{services: []*catalogservice.Service{
		{ID: 10, VendorID: 1, Name: "Exterior wash", Price: 25, DurationMinutes: 30, IsVisible: true},
	}}
	schedule := &fakeScheduleRepo{windows: mondayWindow("09:00", "12:00")}
	uc := newUseCase(&fakeBookingRepo{}, schedule, catalog)

	_, err := uc.Execute(context.Background(), &Request{
		VendorID:   1,
		Date:       monday,
		ServiceIDs: []int64{10, 999},
	})

	require.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecuteHiddenServiceRejected(t *testing.T) {
	catalog := &fakeCatalog{services: []*catalogservice.Service{
		{ID: 10, VendorID: 1, Name: "Exterior wash", Price: 25, DurationMinutes: 30, IsVisible: false},
	}}
	schedule := &fakeScheduleRepo{windows: mondayWindow("09:00", "12:00")}
	uc := newUseCase(&fakeBookingRepo{}, schedule, catalog)

	_, err := uc.Execute(context.Background(), &Request{
		VendorID:   1,
		Date:       monday,
		ServiceIDs: []int64{10},
	})

	require.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecuteBrowseModeUsesProbeDuration(t *testing.T) {
	// Без выбранных услуг сетка строится с длительностью-зондом в один шаг
	schedule := &fakeScheduleRepo{windows: mondayWindow("09:00", "10:30")}
	uc := newUseCase(&fakeBookingRepo{}, schedule, &fakeCatalog{})

	resp, err := uc.Execute(context.Background(), &Request{
		VendorID: 1,
		Date:     monday,
	})

	require.NoError(t, err)
	require.Equal(t, domain.DefaultProbeDurationMinutes, resp.DurationMinutes)
	require.Len(t, resp.Slots, 3) // 09:00, 09:30, 10:00
}

func TestExecuteRepeatedQueryIsDeterministic(t *testing.T) {
	catalog := &fakeCatalog{services: []*catalogservice.Service{
		{ID: 10, VendorID: 1, Name: "Exterior wash", Price: 25, DurationMinutes: 60, IsVisible: true},
	}}
	schedule := &fakeScheduleRepo{
		windows: mondayWindow("09:00", "12:00"),
		blocked: []*domain.BlockedTime{
			{VendorID: 1, StartTime: at(9, 0), EndTime: at(10, 0)},
		},
	}
	uc := newUseCase(&fakeBookingRepo{}, schedule, catalog)

	req := &Request{VendorID: 1, Date: monday, ServiceIDs: []int64{10}}

	first, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestExecuteValidation(t *testing.T) {
	uc := newUseCase(&fakeBookingRepo{}, &fakeScheduleRepo{}, &fakeCatalog{})

	_, err := uc.Execute(context.Background(), &Request{VendorID: 0, Date: monday})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{VendorID: 1})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{VendorID: 1, Date: monday, ServiceIDs: []int64{-5}})
	require.ErrorIs(t, err, ErrInvalidInput)
}
