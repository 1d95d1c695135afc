package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mntdherm/CW-BookingService/internal/domain"
	bookingRepo "github.com/mntdherm/CW-BookingService/internal/infra/storage/booking"
	"github.com/mntdherm/CW-BookingService/internal/service/bookings/models"
	"github.com/mntdherm/CW-BookingService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeBookingRepo struct {
	byID map[int64]*domain.Booking

	cancelledID     int64
	cancelledReason string
	updatedID       int64
	updatedStatus   domain.BookingStatus

	listResult []*domain.Booking
	lastFilter domain.VendorBookingsFilter
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.byID[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeBookingRepo) GetByCustomerID(_ context.Context, customerID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	return f.listResult, nil
}

func (f *fakeBookingRepo) GetByVendorWithFilter(_ context.Context, filter domain.VendorBookingsFilter) ([]*domain.Booking, error) {
	f.lastFilter = filter
	return f.listResult, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	f.updatedID = id
	f.updatedStatus = status
	return nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id int64, reason string) error {
	f.cancelledID = id
	f.cancelledReason = reason
	return nil
}

func at(hour, min int) time.Time {
	return time.Date(2026, 3, 2, hour, min, 0, 0, time.UTC)
}

func pendingBooking() *domain.Booking {
	return &domain.Booking{
		ID:         1,
		VendorID:   10,
		CustomerID: 100,
		StartTime:  at(10, 0),
		EndTime:    at(11, 0),
		Status:     domain.StatusPending,
		TotalPrice: 25,
	}
}

func TestGetByIDAccess(t *testing.T) {
	repo := &fakeBookingRepo{byID: map[int64]*domain.Booking{1: pendingBooking()}}
	svc := NewService(repo, nopLogger{})

	t.Run("customer can read", func(t *testing.T) {
		resp, err := svc.GetByID(context.Background(), 1, 100)
		require.NoError(t, err)
		require.Equal(t, int64(1), resp.ID)
	})

	t.Run("vendor can read", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 1, 10)
		require.NoError(t, err)
	})

	t.Run("stranger denied", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 1, 999)
		require.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("unknown booking", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 42, 100)
		require.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestGetCustomerBookings(t *testing.T) {
	repo := &fakeBookingRepo{listResult: []*domain.Booking{pendingBooking()}}
	svc := NewService(repo, nopLogger{})

	t.Run("own history", func(t *testing.T) {
		resp, err := svc.GetCustomerBookings(context.Background(), &models.GetCustomerBookingsRequest{
			CustomerID:  100,
			RequesterID: 100,
		})
		require.NoError(t, err)
		require.Equal(t, 1, resp.Total)
	})

	t.Run("foreign history denied", func(t *testing.T) {
		_, err := svc.GetCustomerBookings(context.Background(), &models.GetCustomerBookingsRequest{
			CustomerID:  100,
			RequesterID: 200,
		})
		require.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("invalid status filter", func(t *testing.T) {
		_, err := svc.GetCustomerBookings(context.Background(), &models.GetCustomerBookingsRequest{
			CustomerID:  100,
			RequesterID: 100,
			Status:      ptr.Ptr("unknown"),
		})
		require.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestGetVendorBookings(t *testing.T) {
	repo := &fakeBookingRepo{listResult: []*domain.Booking{pendingBooking()}}
	svc := NewService(repo, nopLogger{})

	t.Run("vendor calendar with filter", func(t *testing.T) {
		from := at(0, 0)
		to := from.AddDate(0, 0, 7)
		resp, err := svc.GetVendorBookings(context.Background(), &models.GetVendorBookingsRequest{
			VendorID:    10,
			RequesterID: 10,
			StartDate:   &from,
			EndDate:     &to,
			Status:      ptr.Ptr(string(domain.StatusPending)),
		})
		require.NoError(t, err)
		require.Equal(t, 1, resp.Total)
		require.Equal(t, int64(10), repo.lastFilter.VendorID)
		require.Equal(t, domain.StatusPending, *repo.lastFilter.Status)
	})

	t.Run("foreign calendar denied", func(t *testing.T) {
		_, err := svc.GetVendorBookings(context.Background(), &models.GetVendorBookingsRequest{
			VendorID:    10,
			RequesterID: 11,
		})
		require.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("invalid status filter", func(t *testing.T) {
		_, err := svc.GetVendorBookings(context.Background(), &models.GetVendorBookingsRequest{
			VendorID:    10,
			RequesterID: 10,
			Status:      ptr.Ptr("bogus"),
		})
		require.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestCancel(t *testing.T) {
	t.Run("customer cancels own booking", func(t *testing.T) {
		repo := &fakeBookingRepo{byID: map[int64]*domain.Booking{1: pendingBooking()}}
		svc := NewService(repo, nopLogger{})

		err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{
			RequesterID:        100,
			CancellationReason: "plans changed",
		})

		require.NoError(t, err)
		require.Equal(t, int64(1), repo.cancelledID)
		require.Equal(t, "plans changed", repo.cancelledReason)
	})

	t.Run("vendor cancels booking", func(t *testing.T) {
		repo := &fakeBookingRepo{byID: map[int64]*domain.Booking{1: pendingBooking()}}
		svc := NewService(repo, nopLogger{})

		err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{RequesterID: 10})
		require.NoError(t, err)
	})

	t.Run("stranger denied", func(t *testing.T) {
		repo := &fakeBookingRepo{byID: map[int64]*domain.Booking{1: pendingBooking()}}
		svc := NewService(repo, nopLogger{})

		err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{RequesterID: 999})
		require.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("terminal statuses cannot be cancelled", func(t *testing.T) {
		for _, status := range []domain.BookingStatus{domain.StatusCancelled, domain.StatusCompleted} {
			b := pendingBooking()
			b.Status = status
			repo := &fakeBookingRepo{byID: map[int64]*domain.Booking{1: b}}
			svc := NewService(repo, nopLogger{})

			err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{RequesterID: 100})
			require.ErrorIs(t, err, ErrCannotCancel, "status %s", status)
		}
	})

	t.Run("reason too long", func(t *testing.T) {
		repo := &fakeBookingRepo{byID: map[int64]*domain.Booking{1: pendingBooking()}}
		svc := NewService(repo, nopLogger{})

		long := make([]byte, domain.MaxReasonLength+1)
		for i := range long {
			long[i] = 'x'
		}
		err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{
			RequesterID:        100,
			CancellationReason: string(long),
		})
		require.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestUpdateStatus(t *testing.T) {
	transitions := []struct {
		name    string
		from    domain.BookingStatus
		to      string
		wantErr error
	}{
		{name: "pending to confirmed", from: domain.StatusPending, to: "confirmed"},
		{name: "confirmed to completed", from: domain.StatusConfirmed, to: "completed"},
		{name: "pending to completed forbidden", from: domain.StatusPending, to: "completed", wantErr: ErrInvalidStatus},
		{name: "confirmed to confirmed forbidden", from: domain.StatusConfirmed, to: "confirmed", wantErr: ErrInvalidStatus},
		{name: "cancellation goes through Cancel", from: domain.StatusPending, to: "cancelled", wantErr: ErrInvalidStatus},
		{name: "completed is terminal", from: domain.StatusCompleted, to: "confirmed", wantErr: ErrInvalidStatus},
		{name: "unknown status", from: domain.StatusPending, to: "archived", wantErr: ErrInvalidStatus},
	}

	for _, tt := range transitions {
		t.Run(tt.name, func(t *testing.T) {
			b := pendingBooking()
			b.Status = tt.from
			repo := &fakeBookingRepo{byID: map[int64]*domain.Booking{1: b}}
			svc := NewService(repo, nopLogger{})

			err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
				RequesterID: 10,
				Status:      tt.to,
			})

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, domain.BookingStatus(tt.to), repo.updatedStatus)
		})
	}

	t.Run("customer cannot change status", func(t *testing.T) {
		repo := &fakeBookingRepo{byID: map[int64]*domain.Booking{1: pendingBooking()}}
		svc := NewService(repo, nopLogger{})

		err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
			RequesterID: 100,
			Status:      "confirmed",
		})
		require.ErrorIs(t, err, ErrAccessDenied)
	})
}
