package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/mntdherm/CW-BookingService/internal/domain"
	scheduleRepo "github.com/mntdherm/CW-BookingService/internal/infra/storage/schedule"
	"github.com/mntdherm/CW-BookingService/internal/service/schedule/models"
	"github.com/mntdherm/CW-BookingService/pkg/ptr"
)

// Service сервис управления расписанием вендора: недельная сетка окон
// работы и блокировки времени (перерывы, отпуска, технические работы)
type Service struct {
	scheduleRepo ScheduleRepository
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(scheduleRepo ScheduleRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// GetSchedule получает недельное расписание вендора
// Дни без записей отдаются закрытыми
func (s *Service) GetSchedule(ctx context.Context, vendorID int64) (*models.ScheduleResponse, error) {
	s.logger.Info("GetSchedule: fetching schedule for vendor=%d", vendorID)

	windows, err := s.scheduleRepo.ListOperatingWindows(ctx, vendorID)
	if err != nil {
		s.logger.Error("GetSchedule: repository error for vendor=%d: %v", vendorID, err)
		return nil, fmt.Errorf("%w: GetSchedule - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSchedule(vendorID, windows), nil
}

// UpdateSchedule обновляет недельное расписание вендора
// Все переданные окна валидируются и применяются в одной транзакции:
// либо расписание обновляется целиком, либо не меняется вовсе
func (s *Service) UpdateSchedule(ctx context.Context, req *models.UpdateScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("UpdateSchedule: vendor=%d, %d windows", req.VendorID, len(req.Windows))

	if req.VendorID != req.RequesterID {
		s.logger.Warn("UpdateSchedule: access denied for user=%d to vendor=%d schedule",
			req.RequesterID, req.VendorID)
		return nil, ErrAccessDenied
	}

	if len(req.Windows) == 0 {
		return nil, fmt.Errorf("%w: no windows provided", ErrInvalidInput)
	}

	seen := make(map[int]bool, len(req.Windows))
	windows := make([]*domain.OperatingWindow, 0, len(req.Windows))
	for _, day := range req.Windows {
		if seen[day.Weekday] {
			return nil, fmt.Errorf("%w: duplicate weekday %d", ErrInvalidInput, day.Weekday)
		}
		seen[day.Weekday] = true

		window, err := day.ToDomainWindow(req.VendorID)
		if err != nil {
			s.logger.Warn("UpdateSchedule: invalid window for weekday=%d: %v", day.Weekday, err)
			return nil, fmt.Errorf("%w: weekday %d: %v", ErrInvalidInput, day.Weekday, err)
		}
		windows = append(windows, window)
	}

	txErr := s.txManager.Do(ctx, func(txCtx context.Context) error {
		for _, window := range windows {
			if err := s.scheduleRepo.UpsertOperatingWindow(txCtx, window); err != nil {
				return fmt.Errorf("%w: UpdateSchedule - upsert weekday=%d: %v",
					ErrInternal, int(window.Weekday), err)
			}
		}
		return nil
	})
	if txErr != nil {
		s.logger.Error("UpdateSchedule: transaction failed for vendor=%d: %v", req.VendorID, txErr)
		return nil, txErr
	}

	s.logger.Info("UpdateSchedule: updated %d windows for vendor=%d", len(windows), req.VendorID)
	return s.GetSchedule(ctx, req.VendorID)
}

// CreateBlockedTime создает блокировку времени вендора
// Заблокированный интервал занимает слоты наравне с бронированиями
func (s *Service) CreateBlockedTime(ctx context.Context, req *models.CreateBlockedTimeRequest) (*models.BlockedTimeResponse, error) {
	s.logger.Info("CreateBlockedTime: vendor=%d, %s - %s",
		req.VendorID, req.StartTime.Format(domain.TimeFormat), req.EndTime.Format(domain.TimeFormat))

	if req.VendorID != req.RequesterID {
		s.logger.Warn("CreateBlockedTime: access denied for user=%d to vendor=%d", req.RequesterID, req.VendorID)
		return nil, ErrAccessDenied
	}

	if _, err := domain.NewTimeInterval(req.StartTime, req.EndTime); err != nil {
		s.logger.Warn("CreateBlockedTime: invalid interval for vendor=%d: %v", req.VendorID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if len(req.Reason) > domain.MaxReasonLength {
		return nil, fmt.Errorf("%w: reason too long", ErrInvalidInput)
	}

	var reason *string
	if req.Reason != "" {
		reason = ptr.Ptr(req.Reason)
	}

	blocked := &domain.BlockedTime{
		VendorID:  req.VendorID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Reason:    reason,
	}

	created, err := s.scheduleRepo.CreateBlockedTime(ctx, blocked)
	if err != nil {
		s.logger.Error("CreateBlockedTime: repository error for vendor=%d: %v", req.VendorID, err)
		return nil, fmt.Errorf("%w: CreateBlockedTime - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateBlockedTime: created blocked time id=%d for vendor=%d", created.ID, created.VendorID)
	resp := models.FromDomainBlockedTime(created)
	return &resp, nil
}

// ListBlockedTimes получает блокировки вендора, пересекающиеся с периодом
func (s *Service) ListBlockedTimes(ctx context.Context, req *models.ListBlockedTimesRequest) (*models.BlockedTimeListResponse, error) {
	s.logger.Info("ListBlockedTimes: vendor=%d, %s - %s",
		req.VendorID, req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat))

	if req.VendorID != req.RequesterID {
		s.logger.Warn("ListBlockedTimes: access denied for user=%d to vendor=%d", req.RequesterID, req.VendorID)
		return nil, ErrAccessDenied
	}

	interval, err := domain.NewTimeInterval(req.From, req.To)
	if err != nil {
		s.logger.Warn("ListBlockedTimes: invalid period for vendor=%d: %v", req.VendorID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	blocked, err := s.scheduleRepo.ListBlockedOverlapping(ctx, req.VendorID, interval)
	if err != nil {
		s.logger.Error("ListBlockedTimes: repository error for vendor=%d: %v", req.VendorID, err)
		return nil, fmt.Errorf("%w: ListBlockedTimes - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBlockedTimeList(blocked), nil
}

// DeleteBlockedTime удаляет блокировку времени вендора
func (s *Service) DeleteBlockedTime(ctx context.Context, req *models.DeleteBlockedTimeRequest) error {
	s.logger.Info("DeleteBlockedTime: vendor=%d, blocked time id=%d", req.VendorID, req.BlockedTimeID)

	if req.VendorID != req.RequesterID {
		s.logger.Warn("DeleteBlockedTime: access denied for user=%d to vendor=%d", req.RequesterID, req.VendorID)
		return ErrAccessDenied
	}

	if err := s.scheduleRepo.DeleteBlockedTime(ctx, req.VendorID, req.BlockedTimeID); err != nil {
		if errors.Is(err, scheduleRepo.ErrBlockedTimeNotFound) {
			s.logger.Warn("DeleteBlockedTime: blocked time id=%d not found for vendor=%d",
				req.BlockedTimeID, req.VendorID)
			return ErrBlockedTimeNotFound
		}
		s.logger.Error("DeleteBlockedTime: repository error for vendor=%d: %v", req.VendorID, err)
		return fmt.Errorf("%w: DeleteBlockedTime - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteBlockedTime: deleted blocked time id=%d for vendor=%d", req.BlockedTimeID, req.VendorID)
	return nil
}
