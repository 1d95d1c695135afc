package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mntdherm/CW-BookingService/internal/domain"
	scheduleRepo "github.com/mntdherm/CW-BookingService/internal/infra/storage/schedule"
	"github.com/mntdherm/CW-BookingService/internal/service/schedule/models"
	"github.com/mntdherm/CW-BookingService/pkg/ptr"
	"github.com/mntdherm/CW-BookingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// fakeTxManager прогоняет fn без настоящей транзакции
type fakeTxManager struct {
	err   error
	calls int
}

func (f *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	return fn(ctx)
}

type fakeScheduleRepo struct {
	windows []*domain.OperatingWindow
	blocked []*domain.BlockedTime

	upserted  []*domain.OperatingWindow
	deletedID int64
	deleteErr error
}

func (f *fakeScheduleRepo) ListOperatingWindows(_ context.Context, vendorID int64) ([]*domain.OperatingWindow, error) {
	return f.windows, nil
}

func (f *fakeScheduleRepo) UpsertOperatingWindow(_ context.Context, window *domain.OperatingWindow) error {
	f.upserted = append(f.upserted, window)
	return nil
}

func (f *fakeScheduleRepo) CreateBlockedTime(_ context.Context, blocked *domain.BlockedTime) (*domain.BlockedTime, error) {
	created := *blocked
	created.ID = int64(len(f.blocked) + 1)
	created.CreatedAt = time.Now()
	f.blocked = append(f.blocked, &created)
	return &created, nil
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

func (f *fakeScheduleRepo) DeleteBlockedTime(_ context.Context, vendorID, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedID = id
	return nil
}

func at(hour, min int) time.Time {
	return time.Date(2026, 3, 2, hour, min, 0, 0, time.UTC)
}

func openDay(weekday int, open, close string) models.DayWindow {
	return models.DayWindow{Weekday: weekday, OpenTime: ptr.Ptr(open), CloseTime: ptr.Ptr(close)}
}

func TestGetScheduleFillsMissingDaysAsClosed(t *testing.T) {
	repo := &fakeScheduleRepo{windows: []*domain.OperatingWindow{
		{VendorID: 1, Weekday: time.Monday, OpenTime: types.TimeString("09:00"), CloseTime: types.TimeString("18:00")},
	}}
	svc := NewService(repo, &fakeTxManager{}, nopLogger{})

	resp, err := svc.GetSchedule(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, resp.Windows, 7)

	monday := resp.Windows[int(time.Monday)]
	require.False(t, monday.IsClosed)
	require.Equal(t, "09:00", *monday.OpenTime)
	require.Equal(t, "18:00", *monday.CloseTime)

	// Дни без записей закрыты
	sunday := resp.Windows[int(time.Sunday)]
	require.True(t, sunday.IsClosed)
	require.Nil(t, sunday.OpenTime)
}

func TestUpdateSchedule(t *testing.T) {
	t.Run("applies all windows in one transaction", func(t *testing.T) {
		repo := &fakeScheduleRepo{}
		tx := &fakeTxManager{}
		svc := NewService(repo, tx, nopLogger{})

		_, err := svc.UpdateSchedule(context.Background(), &models.UpdateScheduleRequest{
			VendorID:    1,
			RequesterID: 1,
			Windows: []models.DayWindow{
				openDay(1, "09:00", "18:00"),
				openDay(2, "09:00", "18:00"),
				{Weekday: 0, IsClosed: true},
			},
		})

		require.NoError(t, err)
		require.Equal(t, 1, tx.calls)
		require.Len(t, repo.upserted, 3)
	})

	t.Run("access denied for non-owner", func(t *testing.T) {
		svc := NewService(&fakeScheduleRepo{}, &fakeTxManager{}, nopLogger{})

		_, err := svc.UpdateSchedule(context.Background(), &models.UpdateScheduleRequest{
			VendorID:    1,
			RequesterID: 2,
			Windows:     []models.DayWindow{openDay(1, "09:00", "18:00")},
		})
		require.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("empty window list rejected", func(t *testing.T) {
		svc := NewService(&fakeScheduleRepo{}, &fakeTxManager{}, nopLogger{})

		_, err := svc.UpdateSchedule(context.Background(), &models.UpdateScheduleRequest{
			VendorID:    1,
			RequesterID: 1,
		})
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("duplicate weekday rejected", func(t *testing.T) {
		repo := &fakeScheduleRepo{}
		svc := NewService(repo, &fakeTxManager{}, nopLogger{})

		_, err := svc.UpdateSchedule(context.Background(), &models.UpdateScheduleRequest{
			VendorID:    1,
			RequesterID: 1,
			Windows: []models.DayWindow{
				openDay(1, "09:00", "18:00"),
				openDay(1, "10:00", "19:00"),
			},
		})
		require.ErrorIs(t, err, ErrInvalidInput)
		require.Empty(t, repo.upserted)
	})

	t.Run("invalid window rejects whole update", func(t *testing.T) {
		repo := &fakeScheduleRepo{}
		svc := NewService(repo, &fakeTxManager{}, nopLogger{})

		_, err := svc.UpdateSchedule(context.Background(), &models.UpdateScheduleRequest{
			VendorID:    1,
			RequesterID: 1,
			Windows: []models.DayWindow{
				openDay(1, "09:00", "18:00"),
				openDay(2, "18:00", "09:00"), // открытие после закрытия
			},
		})
		require.ErrorIs(t, err, ErrInvalidInput)
		require.Empty(t, repo.upserted)
	})
}

func TestCreateBlockedTime(t *testing.T) {
	t.Run("creates with reason", func(t *testing.T) {
		repo := &fakeScheduleRepo{}
		svc := NewService(repo, &fakeTxManager{}, nopLogger{})

		resp, err := svc.CreateBlockedTime(context.Background(), &models.CreateBlockedTimeRequest{
			VendorID:    1,
			RequesterID: 1,
			StartTime:   at(12, 0),
			EndTime:     at(13, 0),
			Reason:      "lunch break",
		})

		require.NoError(t, err)
		require.Equal(t, int64(1), resp.ID)
		require.Equal(t, "lunch break", *resp.Reason)
	})

	t.Run("empty reason stored as nil", func(t *testing.T) {
		repo := &fakeScheduleRepo{}
		svc := NewService(repo, &fakeTxManager{}, nopLogger{})

		resp, err := svc.CreateBlockedTime(context.Background(), &models.CreateBlockedTimeRequest{
			VendorID:    1,
			RequesterID: 1,
			StartTime:   at(12, 0),
			EndTime:     at(13, 0),
		})

		require.NoError(t, err)
		require.Nil(t, resp.Reason)
	})

	t.Run("inverted interval rejected", func(t *testing.T) {
		svc := NewService(&fakeScheduleRepo{}, &fakeTxManager{}, nopLogger{})

		_, err := svc.CreateBlockedTime(context.Background(), &models.CreateBlockedTimeRequest{
			VendorID:    1,
			RequesterID: 1,
			StartTime:   at(13, 0),
			EndTime:     at(12, 0),
		})
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("access denied for non-owner", func(t *testing.T) {
		svc := NewService(&fakeScheduleRepo{}, &fakeTxManager{}, nopLogger{})

		_, err := svc.CreateBlockedTime(context.Background(), &models.CreateBlockedTimeRequest{
			VendorID:    1,
			RequesterID: 2,
			StartTime:   at(12, 0),
			EndTime:     at(13, 0),
		})
		require.ErrorIs(t, err, ErrAccessDenied)
	})
}

func TestListBlockedTimes(t *testing.T) {
	repo := &fakeScheduleRepo{blocked: []*domain.BlockedTime{
		{ID: 1, VendorID: 1, StartTime: at(12, 0), EndTime: at(13, 0)},
		{ID: 2, VendorID: 1, StartTime: at(18, 0), EndTime: at(19, 0)},
	}}
	svc := NewService(repo, &fakeTxManager{}, nopLogger{})

	t.Run("overlapping period", func(t *testing.T) {
		resp, err := svc.ListBlockedTimes(context.Background(), &models.ListBlockedTimesRequest{
			VendorID:    1,
			RequesterID: 1,
			From:        at(0, 0),
			To:          at(14, 0),
		})

		require.NoError(t, err)
		require.Equal(t, 1, resp.Total)
		require.Equal(t, int64(1), resp.BlockedTimes[0].ID)
	})

	t.Run("inverted period rejected", func(t *testing.T) {
		_, err := svc.ListBlockedTimes(context.Background(), &models.ListBlockedTimesRequest{
			VendorID:    1,
			RequesterID: 1,
			From:        at(14, 0),
			To:          at(0, 0),
		})
		require.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestDeleteBlockedTime(t *testing.T) {
	t.Run("deletes own blocked time", func(t *testing.T) {
		repo := &fakeScheduleRepo{}
		svc := NewService(repo, &fakeTxManager{}, nopLogger{})

		err := svc.DeleteBlockedTime(context.Background(), &models.DeleteBlockedTimeRequest{
			VendorID:      1,
			RequesterID:   1,
			BlockedTimeID: 5,
		})

		require.NoError(t, err)
		require.Equal(t, int64(5), repo.deletedID)
	})

	t.Run("not found", func(t *testing.T) {
		repo := &fakeScheduleRepo{deleteErr: scheduleRepo.ErrBlockedTimeNotFound}
		svc := NewService(repo, &fakeTxManager{}, nopLogger{})

		err := svc.DeleteBlockedTime(context.Background(), &models.DeleteBlockedTimeRequest{
			VendorID:      1,
			RequesterID:   1,
			BlockedTimeID: 42,
		})
		require.ErrorIs(t, err, ErrBlockedTimeNotFound)
	})

	t.Run("access denied for non-owner", func(t *testing.T) {
		svc := NewService(&fakeScheduleRepo{}, &fakeTxManager{}, nopLogger{})

		err := svc.DeleteBlockedTime(context.Background(), &models.DeleteBlockedTimeRequest{
			VendorID:      1,
			RequesterID:   2,
			BlockedTimeID: 5,
		})
		require.ErrorIs(t, err, ErrAccessDenied)
	})
}
