package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/mntdherm/CW-BookingService/pkg/types"
)

var (
	// ErrInvalidWindow возвращается для окна работы с open >= close
	ErrInvalidWindow = errors.New("domain: invalid operating window")
)

// OperatingWindow describes a vendor's open/close hours for one weekday.
// A missing row for a weekday means the vendor is closed that day
type OperatingWindow struct {
	ID        int64
	VendorID  int64
	Weekday   time.Weekday
	OpenTime  types.TimeString
	CloseTime types.TimeString
	IsClosed  bool
}

// Validate checks that an open window has open < close
func (w *OperatingWindow) Validate() error {
	if w.IsClosed {
		return nil
	}
	if err := w.OpenTime.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidWindow, err)
	}
	if err := w.CloseTime.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidWindow, err)
	}
	if !w.OpenTime.IsBefore(w.CloseTime) {
		return fmt.Errorf("%w: open %s must be before close %s", ErrInvalidWindow, w.OpenTime, w.CloseTime)
	}
	return nil
}

// Envelope returns the open-to-close range of the window on the given date
func (w *OperatingWindow) Envelope(date time.Time) (TimeInterval, error) {
	if w.IsClosed {
		return TimeInterval{}, fmt.Errorf("%w: window is closed", ErrInvalidWindow)
	}
	open, err := w.OpenTime.OnDate(date)
	if err != nil {
		return TimeInterval{}, fmt.Errorf("%w: %v", ErrInvalidWindow, err)
	}
	closeAt, err := w.CloseTime.OnDate(date)
	if err != nil {
		return TimeInterval{}, fmt.Errorf("%w: %v", ErrInvalidWindow, err)
	}
	return NewTimeInterval(open, closeAt)
}

// ClosedWindow returns the fail-safe window used when a vendor has no
// operating-hours row for the weekday
func ClosedWindow(vendorID int64, weekday time.Weekday) *OperatingWindow {
	return &OperatingWindow{VendorID: vendorID, Weekday: weekday, IsClosed: true}
}

// BlockedTime is a vendor-initiated unavailability interval (maintenance etc.)
type BlockedTime struct {
	ID        int64
	VendorID  int64
	StartTime time.Time
	EndTime   time.Time
	Reason    *string
	CreatedAt time.Time
}

// Interval returns the [StartTime, EndTime) range of the blocked time
func (t *BlockedTime) Interval() TimeInterval {
	return TimeInterval{Start: t.StartTime, End: t.EndTime}
}

// Occupancy is a point-in-time snapshot of everything that makes a
// vendor's time unavailable: active bookings plus blocked intervals.
// It holds no locks; commit-time correctness is the transaction's job
type Occupancy struct {
	Bookings []*Booking
	Blocked  []*BlockedTime
}

// ConflictsWith reports whether the candidate interval overlaps any
// occupying booking or blocked time in the snapshot
func (o *Occupancy) ConflictsWith(candidate TimeInterval) bool {
	for _, b := range o.Bookings {
		if !b.Occupies() {
			continue
		}
		if candidate.Overlaps(b.Interval()) {
			return true
		}
	}
	for _, t := range o.Blocked {
		if candidate.Overlaps(t.Interval()) {
			return true
		}
	}
	return false
}
