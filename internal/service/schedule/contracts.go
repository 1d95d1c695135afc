package schedule

import (
	"context"

	"github.com/mntdherm/CW-BookingService/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписания
type ScheduleRepository interface {
	ListOperatingWindows(ctx context.Context, vendorID int64) ([]*domain.OperatingWindow, error)
	UpsertOperatingWindow(ctx context.Context, window *domain.OperatingWindow) error
	CreateBlockedTime(ctx context.Context, blocked *domain.BlockedTime) (*domain.BlockedTime, error)
	ListBlockedOverlapping(ctx context.Context, vendorID int64, interval domain.TimeInterval) ([]*domain.BlockedTime, error)
	DeleteBlockedTime(ctx context.Context, vendorID, blockedTimeID int64) error
}

// TransactionManager интерфейс менеджера транзакций
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
