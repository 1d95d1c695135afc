package list_blocked_times

import (
	"context"

	"github.com/mntdherm/CW-BookingService/internal/service/schedule/models"
)

type ScheduleService interface {
	ListBlockedTimes(ctx context.Context, req *models.ListBlockedTimesRequest) (*models.BlockedTimeListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
