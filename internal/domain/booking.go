package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// Booking represents a customer appointment at a car-wash vendor
type Booking struct {
	ID         int64
	VendorID   int64
	CustomerID int64
	StartTime  time.Time
	EndTime    time.Time
	Status     BookingStatus
	TotalPrice float64
	Notes      *string

	// Snapshot of the selected services at booking time;
	// later catalog price changes must not affect the booking
	Services []BookingService

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BookingService is a price/duration snapshot of one selected service
type BookingService struct {
	BookingID       int64
	ServiceID       int64
	ServiceName     string
	Price           float64
	DurationMinutes int
}

// Interval returns the [StartTime, EndTime) range of the booking
func (b *Booking) Interval() TimeInterval {
	return TimeInterval{Start: b.StartTime, End: b.EndTime}
}

// Occupies returns true if the booking blocks its time range.
// Cancelled bookings never occupy
func (b *Booking) Occupies() bool {
	return b.Status != StatusCancelled
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// TotalDurationMinutes returns the summed duration of the snapshotted services
func (b *Booking) TotalDurationMinutes() int {
	total := 0
	for _, s := range b.Services {
		total += s.DurationMinutes
	}
	return total
}

// VendorBookingsFilter фильтр для получения бронирований вендора
type VendorBookingsFilter struct {
	VendorID         int64          // Обязательный параметр
	StartDate        *time.Time     // Начало периода (опционально)
	EndDate          *time.Time     // Конец периода (опционально)
	Status           *BookingStatus // Фильтр по статусу (опционально)
	IncludeCancelled bool           // Включать ли отмененные бронирования
}
