package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func at(hour, min int) time.Time {
	return time.Date(2026, 3, 2, hour, min, 0, 0, time.UTC)
}

func TestNewTimeInterval(t *testing.T) {
	t.Run("valid interval", func(t *testing.T) {
		interval, err := NewTimeInterval(at(10, 0), at(11, 0))
		require.NoError(t, err)
		require.Equal(t, time.Hour, interval.Duration())
	})

	t.Run("zero-length interval is rejected", func(t *testing.T) {
		_, err := NewTimeInterval(at(10, 0), at(10, 0))
		require.ErrorIs(t, err, ErrInvalidInterval)
	})

	t.Run("inverted interval is rejected", func(t *testing.T) {
		_, err := NewTimeInterval(at(11, 0), at(10, 0))
		require.ErrorIs(t, err, ErrInvalidInterval)
	})
}

func TestTimeIntervalOverlaps(t *testing.T) {
	cases := []struct {
		name     string
		a, b     TimeInterval
		overlaps bool
	}{
		{
			name:     "identical intervals",
			a:        TimeInterval{at(10, 0), at(11, 0)},
			b:        TimeInterval{at(10, 0), at(11, 0)},
			overlaps: true,
		},
		{
			name:     "partial overlap",
			a:        TimeInterval{at(10, 0), at(11, 0)},
			b:        TimeInterval{at(10, 30), at(11, 30)},
			overlaps: true,
		},
		{
			name:     "contained interval",
			a:        TimeInterval{at(9, 0), at(12, 0)},
			b:        TimeInterval{at(10, 0), at(10, 30)},
			overlaps: true,
		},
		{
			name:     "adjacent intervals do not overlap",
			a:        TimeInterval{at(10, 0), at(11, 0)},
			b:        TimeInterval{at(11, 0), at(12, 0)},
			overlaps: false,
		},
		{
			name:     "disjoint intervals",
			a:        TimeInterval{at(9, 0), at(10, 0)},
			b:        TimeInterval{at(11, 0), at(12, 0)},
			overlaps: false,
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.overlaps, tt.a.Overlaps(tt.b))
			// Пересечение симметрично
			require.Equal(t, tt.overlaps, tt.b.Overlaps(tt.a))
		})
	}
}

func TestTimeIntervalContains(t *testing.T) {
	outer := TimeInterval{at(9, 0), at(18, 0)}

	require.True(t, outer.Contains(TimeInterval{at(9, 0), at(18, 0)}))
	require.True(t, outer.Contains(TimeInterval{at(10, 0), at(11, 0)}))
	require.True(t, outer.Contains(TimeInterval{at(17, 0), at(18, 0)}))
	require.False(t, outer.Contains(TimeInterval{at(8, 30), at(9, 30)}))
	require.False(t, outer.Contains(TimeInterval{at(17, 30), at(18, 30)}))
}

func TestOccupancyConflictsWith(t *testing.T) {
	candidate := TimeInterval{at(10, 0), at(11, 0)}

	t.Run("empty occupancy has no conflicts", func(t *testing.T) {
		occupancy := &Occupancy{}
		require.False(t, occupancy.ConflictsWith(candidate))
	})

	t.Run("active booking conflicts", func(t *testing.T) {
		occupancy := &Occupancy{
			Bookings: []*Booking{
				{StartTime: at(10, 30), EndTime: at(11, 30), Status: StatusPending},
			},
		}
		require.True(t, occupancy.ConflictsWith(candidate))
	})

	t.Run("cancelled booking does not occupy", func(t *testing.T) {
		occupancy := &Occupancy{
			Bookings: []*Booking{
				{StartTime: at(10, 0), EndTime: at(11, 0), Status: StatusCancelled},
			},
		}
		require.False(t, occupancy.ConflictsWith(candidate))
	})

	t.Run("blocked time conflicts", func(t *testing.T) {
		occupancy := &Occupancy{
			Blocked: []*BlockedTime{
				{StartTime: at(9, 30), EndTime: at(10, 30)},
			},
		}
		require.True(t, occupancy.ConflictsWith(candidate))
	})

	t.Run("adjacent booking does not conflict", func(t *testing.T) {
		occupancy := &Occupancy{
			Bookings: []*Booking{
				{StartTime: at(11, 0), EndTime: at(12, 0), Status: StatusConfirmed},
			},
		}
		require.False(t, occupancy.ConflictsWith(candidate))
	})
}

func TestBookingStatusHelpers(t *testing.T) {
	cases := []struct {
		status      BookingStatus
		occupies    bool
		cancellable bool
	}{
		{StatusPending, true, true},
		{StatusConfirmed, true, true},
		{StatusCompleted, true, false},
		{StatusCancelled, false, false},
	}

	for _, tt := range cases {
		t.Run(string(tt.status), func(t *testing.T) {
			b := &Booking{Status: tt.status}
			require.Equal(t, tt.occupies, b.Occupies())
			require.Equal(t, tt.cancellable, b.CanBeCancelled())
		})
	}
}
