package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mntdherm/CW-BookingService/internal/domain"
	scheduleRepo "github.com/mntdherm/CW-BookingService/internal/infra/storage/schedule"
	catalogClient "github.com/mntdherm/CW-BookingService/internal/integrations/catalogservice"
	"github.com/mntdherm/CW-BookingService/pkg/txmanager"
)

// UseCase use case создания бронирования
//
// Протокол коммита: услуги резолвятся из каталога до транзакции, затем
// в одной сериализуемой транзакции повторно проверяется занятость слота
// и вставляются строки бронирования. Клиентская проверка доступности
// ("слот свободен") к моменту коммита могла устареть, поэтому повторная
// проверка обязательна. Источником истины для инварианта "нет двойных
// бронирований" служит изоляция транзакции плюс exclusion constraint в
// схеме БД; проверка в коде - быстрый путь с понятной ошибкой
type UseCase struct {
	bookingRepo   BookingRepository
	scheduleRepo  ScheduleRepository
	catalogClient CatalogServiceClient
	txManager     TransactionManager
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	catalogClient CatalogServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		scheduleRepo:  scheduleRepo,
		catalogClient: catalogClient,
		txManager:     txManager,
		logger:        logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: customer=%d, vendor=%d, services=%v, start=%s",
		req.CustomerID, req.VendorID, req.ServiceIDs, req.StartTime.Format(time.RFC3339))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Резолвим услуги из каталога (вне транзакции - внешний HTTP вызов
	// не должен удерживать транзакцию БД)
	services, err := uc.catalogClient.GetServices(ctx, req.VendorID, req.ServiceIDs)
	if err != nil {
		if errors.Is(err, catalogClient.ErrVendorNotFound) {
			uc.logger.Warn("CreateBooking: vendor id=%d not found in catalog", req.VendorID)
			return nil, ErrVendorNotFound
		}
		uc.logger.Error("CreateBooking: failed to get services for vendor id=%d: %v", req.VendorID, err)
		return nil, fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
	}

	snapshots, err := resolveServices(req.ServiceIDs, services)
	if err != nil {
		uc.logger.Warn("CreateBooking: service resolution failed: %v", err)
		return nil, err
	}

	totalDuration, totalPrice := totals(snapshots)
	if totalDuration <= 0 {
		uc.logger.Warn("CreateBooking: services sum to %d minutes", totalDuration)
		return nil, fmt.Errorf("%w: services sum to %d minutes", ErrInvalidDuration, totalDuration)
	}

	// 3. Вычисляем интервал бронирования: конец = начало + сумма длительностей
	endTime := req.StartTime.Add(time.Duration(totalDuration) * time.Minute)
	interval, err := domain.NewTimeInterval(req.StartTime, endTime)
	if err != nil {
		uc.logger.Warn("CreateBooking: invalid booking interval: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidDuration, err)
	}

	var result *domain.Booking

	// 4. Повторная проверка занятости и вставка в одной сериализуемой транзакции
	txErr := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Слот должен лежать внутри рабочего окна дня
		window, err := uc.scheduleRepo.GetOperatingWindow(txCtx, req.VendorID, req.StartTime.Weekday())
		if err != nil {
			if errors.Is(err, scheduleRepo.ErrWindowNotFound) {
				uc.logger.Warn("CreateBooking: vendor=%d has no operating window on weekday=%d",
					req.VendorID, int(req.StartTime.Weekday()))
				return ErrVendorClosed
			}
			uc.logger.Error("CreateBooking: failed to get operating window: %v", err)
			return fmt.Errorf("%w: failed to get operating window: %v", ErrInternal, err)
		}

		if window.IsClosed {
			uc.logger.Warn("CreateBooking: vendor=%d is closed on %s",
				req.VendorID, req.StartTime.Format(domain.DateFormat))
			return ErrVendorClosed
		}

		envelope, err := window.Envelope(req.StartTime)
		if err != nil {
			uc.logger.Error("CreateBooking: malformed operating window for vendor=%d: %v", req.VendorID, err)
			return fmt.Errorf("%w: malformed operating window: %v", ErrInternal, err)
		}

		if !envelope.Contains(interval) {
			uc.logger.Warn("CreateBooking: interval %s-%s outside operating hours %s-%s",
				interval.Start.Format(domain.TimeFormat), interval.End.Format(domain.TimeFormat),
				window.OpenTime, window.CloseTime)
			return ErrOutsideOperatingHours
		}

		// 4.2. Повторно загружаем занятость, скоуп - интервал бронирования
		// Чтение бронирований идет с FOR UPDATE (см. репозиторий)
		bookings, err := uc.bookingRepo.GetOverlapping(txCtx, req.VendorID, interval)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get overlapping bookings: %v", err)
			return fmt.Errorf("%w: failed to get overlapping bookings: %v", ErrInternal, err)
		}

		blocked, err := uc.scheduleRepo.ListBlockedOverlapping(txCtx, req.VendorID, interval)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get blocked times: %v", err)
			return fmt.Errorf("%w: failed to get blocked times: %v", ErrInternal, err)
		}

		occupancy := &domain.Occupancy{Bookings: bookings, Blocked: blocked}
		if occupancy.ConflictsWith(interval) {
			uc.logger.Warn("CreateBooking: slot %s-%s already taken for vendor=%d",
				interval.Start.Format(time.RFC3339), interval.End.Format(time.RFC3339), req.VendorID)
			return ErrSlotNotAvailable
		}

		// 4.3. Вставляем бронирование со снапшотами услуг
		booking := &domain.Booking{
			VendorID:   req.VendorID,
			CustomerID: req.CustomerID,
			StartTime:  interval.Start,
			EndTime:    interval.End,
			Status:     domain.StatusPending,
			TotalPrice: totalPrice,
			Notes:      req.Notes,
			Services:   snapshots,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if txErr != nil {
		// Конфликт сериализации или exclusion constraint - проигранная гонка
		// за слот: детерминированно отдаем ErrSlotNotAvailable, клиент
		// перезапрашивает доступность и выбирает другое время
		if errors.Is(txErr, txmanager.ErrSerializationFailure) || errors.Is(txErr, txmanager.ErrExclusionViolation) {
			uc.logger.Warn("CreateBooking: lost commit race for vendor=%d, start=%s: %v",
				req.VendorID, req.StartTime.Format(time.RFC3339), txErr)
			return nil, ErrSlotNotAvailable
		}
		return nil, txErr
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d (vendor=%d, %s-%s)",
		result.ID, result.VendorID,
		result.StartTime.Format(time.RFC3339), result.EndTime.Format(time.RFC3339))

	return toResponse(result), nil
}

// toResponse конвертирует доменную модель в ответ use case
func toResponse(b *domain.Booking) *Response {
	services := make([]ServiceSnapshot, len(b.Services))
	for i, s := range b.Services {
		services[i] = ServiceSnapshot{
			ServiceID:       s.ServiceID,
			Name:            s.ServiceName,
			Price:           s.Price,
			DurationMinutes: s.DurationMinutes,
		}
	}

	return &Response{
		ID:         b.ID,
		VendorID:   b.VendorID,
		CustomerID: b.CustomerID,
		StartTime:  b.StartTime,
		EndTime:    b.EndTime,
		Status:     string(b.Status),
		TotalPrice: b.TotalPrice,
		Notes:      b.Notes,
		Services:   services,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}
