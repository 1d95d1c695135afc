package get_available_slots

import (
	"context"
	"time"

	"github.com/mntdherm/CW-BookingService/internal/domain"
	"github.com/mntdherm/CW-BookingService/internal/integrations/catalogservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetOverlapping получает активные бронирования вендора, пересекающиеся с интервалом
	GetOverlapping(ctx context.Context, vendorID int64, interval domain.TimeInterval) ([]*domain.Booking, error)
}

// ScheduleRepository интерфейс репозитория расписания вендора
type ScheduleRepository interface {
	GetOperatingWindow(ctx context.Context, vendorID int64, weekday time.Weekday) (*domain.OperatingWindow, error)
	ListBlockedOverlapping(ctx context.Context, vendorID int64, interval domain.TimeInterval) ([]*domain.BlockedTime, error)
}

// CatalogServiceClient интерфейс клиента каталога услуг
type CatalogServiceClient interface {
	GetServices(ctx context.Context, vendorID int64, serviceIDs []int64) ([]*catalogservice.Service, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
