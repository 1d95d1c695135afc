package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidInterval возвращается при попытке создать интервал с start >= end
	ErrInvalidInterval = errors.New("domain: invalid time interval")
)

// TimeInterval represents a half-open time range [Start, End).
type TimeInterval struct {
	Start time.Time
	End   time.Time
}

// NewTimeInterval constructs an interval, rejecting zero-length and inverted ranges.
func NewTimeInterval(start, end time.Time) (TimeInterval, error) {
	if !start.Before(end) {
		return TimeInterval{}, fmt.Errorf("%w: start %s must be before end %s",
			ErrInvalidInterval, start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	return TimeInterval{Start: start, End: end}, nil
}

// Overlaps reports whether two half-open intervals intersect.
// Adjacent intervals (a.End == b.Start) do not overlap.
func (i TimeInterval) Overlaps(other TimeInterval) bool {
	return i.Start.Before(other.End) && other.Start.Before(i.End)
}

// Contains reports whether inner lies entirely within i.
func (i TimeInterval) Contains(inner TimeInterval) bool {
	return !inner.Start.Before(i.Start) && !i.End.Before(inner.End)
}

// Duration returns the length of the interval.
func (i TimeInterval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}
