package domain

// Slot is a candidate bookable time window on a given day.
// Slots are derived values: regenerated on every availability query,
// never persisted
type Slot struct {
	Interval  TimeInterval
	Available bool
}
