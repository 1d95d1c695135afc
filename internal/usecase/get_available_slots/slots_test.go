package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mntdherm/CW-BookingService/internal/domain"
)

func at(hour, min int) time.Time {
	return time.Date(2026, 3, 2, hour, min, 0, 0, time.UTC)
}

func TestGenerateSlotsGrid(t *testing.T) {
	// Окно 09:00-12:00, шаг 30 мин, длительность 60 мин:
	// последний слот 11:00-12:00, кандидата 11:30-12:30 нет
	envelope := domain.TimeInterval{Start: at(9, 0), End: at(12, 0)}

	slots := generateSlots(envelope, &domain.Occupancy{}, 60*time.Minute, 30*time.Minute)

	require.Len(t, slots, 5)
	require.Equal(t, at(9, 0), slots[0].Interval.Start)
	require.Equal(t, at(10, 0), slots[0].Interval.End)
	require.Equal(t, at(11, 0), slots[4].Interval.Start)
	require.Equal(t, at(12, 0), slots[4].Interval.End)

	for _, s := range slots {
		require.True(t, s.Available)
		require.Equal(t, 60*time.Minute, s.Interval.Duration())
	}
}

func TestGenerateSlotsDurationEqualsWindow(t *testing.T) {
	envelope := domain.TimeInterval{Start: at(9, 0), End: at(12, 0)}

	slots := generateSlots(envelope, &domain.Occupancy{}, 3*time.Hour, 30*time.Minute)

	require.Len(t, slots, 1)
	require.Equal(t, at(9, 0), slots[0].Interval.Start)
	require.Equal(t, at(12, 0), slots[0].Interval.End)
}

func TestGenerateSlotsDurationExceedsWindow(t *testing.T) {
	envelope := domain.TimeInterval{Start: at(9, 0), End: at(12, 0)}

	slots := generateSlots(envelope, &domain.Occupancy{}, 4*time.Hour, 30*time.Minute)

	require.Empty(t, slots)
}

func TestGenerateSlotsMarksConflicts(t *testing.T) {
	envelope := domain.TimeInterval{Start: at(9, 0), End: at(12, 0)}
	occupancy := &domain.Occupancy{
		Bookings: []*domain.Booking{
			{StartTime: at(10, 0), EndTime: at(11, 0), Status: domain.StatusConfirmed},
		},
	}

	slots := generateSlots(envelope, occupancy, 60*time.Minute, 30*time.Minute)
	require.Len(t, slots, 5)

	// Занятые слоты остаются в сетке, но помечаются недоступными
	byStart := make(map[time.Time]bool, len(slots))
	for _, s := range slots {
		byStart[s.Interval.Start] = s.Available
	}

	require.True(t, byStart[at(9, 0)])   // 09:00-10:00 смежен с бронированием
	require.False(t, byStart[at(9, 30)]) // 09:30-10:30 пересекается
	require.False(t, byStart[at(10, 0)])
	require.False(t, byStart[at(10, 30)])
	require.True(t, byStart[at(11, 0)]) // 11:00-12:00 начинается на границе
}

func TestGenerateSlotsCancelledBookingDoesNotBlock(t *testing.T) {
	envelope := domain.TimeInterval{Start: at(9, 0), End: at(12, 0)}
	occupancy := &domain.Occupancy{
		Bookings: []*domain.Booking{
			{StartTime: at(9, 0), EndTime: at(12, 0), Status: domain.StatusCancelled},
		},
	}

	slots := generateSlots(envelope, occupancy, 60*time.Minute, 30*time.Minute)

	for _, s := range slots {
		require.True(t, s.Available)
	}
}

func TestGenerateSlotsBlockedTime(t *testing.T) {
	envelope := domain.TimeInterval{Start: at(9, 0), End: at(12, 0)}
	occupancy := &domain.Occupancy{
		Blocked: []*domain.BlockedTime{
			{StartTime: at(11, 0), EndTime: at(12, 0)},
		},
	}

	slots := generateSlots(envelope, occupancy, 30*time.Minute, 30*time.Minute)
	require.Len(t, slots, 6)

	for _, s := range slots {
		if s.Interval.Start.Before(at(11, 0)) {
			require.True(t, s.Available, "slot %s", s.Interval.Start)
		} else {
			require.False(t, s.Available, "slot %s", s.Interval.Start)
		}
	}
}
