package delete_blocked_time

import (
	"context"

	"github.com/mntdherm/CW-BookingService/internal/service/schedule/models"
)

type ScheduleService interface {
	DeleteBlockedTime(ctx context.Context, req *models.DeleteBlockedTimeRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
