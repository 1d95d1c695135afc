package domain

// Default configuration values
const (
	// DefaultSlotIntervalMinutes шаг сетки слотов
	DefaultSlotIntervalMinutes = 30

	// DefaultProbeDurationMinutes длительность-зонд для режима просмотра
	// доступности без выбранных услуг
	DefaultProbeDurationMinutes = DefaultSlotIntervalMinutes
)

// Business validation constants
const (
	MinServiceDurationMinutes = 5
	MaxServiceDurationMinutes = 480 // 8 hours
	MaxNotesLength            = 500
	MaxReasonLength           = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// OccupyingStatuses статусы бронирований, занимающих время вендора
// Используется при загрузке occupancy-среза
var OccupyingStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}
