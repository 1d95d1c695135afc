package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mntdherm/CW-BookingService/internal/domain"
	scheduleRepo "github.com/mntdherm/CW-BookingService/internal/infra/storage/schedule"
	catalogClient "github.com/mntdherm/CW-BookingService/internal/integrations/catalogservice"
)

// UseCase use case для получения доступных слотов на день
type UseCase struct {
	bookingRepo   BookingRepository
	scheduleRepo  ScheduleRepository
	catalogClient CatalogServiceClient
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	catalogClient CatalogServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		scheduleRepo:  scheduleRepo,
		catalogClient: catalogClient,
		logger:        logger,
	}
}

// Execute выполняет use case получения доступных слотов
// Чистая функция текущего состояния хранилища: повторный вызов без
// промежуточных записей возвращает идентичный список слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: vendor=%d, date=%s, services=%v",
		req.VendorID, req.Date.Format(domain.DateFormat), req.ServiceIDs)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Определяем суммарную длительность выбранных услуг
	// Пустой список услуг - режим просмотра: берем длительность-зонд,
	// равную шагу сетки, иначе каждый слот был бы нулевым и "свободным"
	totalDuration := domain.DefaultProbeDurationMinutes
	if len(req.ServiceIDs) > 0 {
		services, err := uc.catalogClient.GetServices(ctx, req.VendorID, req.ServiceIDs)
		if err != nil {
			if errors.Is(err, catalogClient.ErrVendorNotFound) {
				uc.logger.Warn("GetAvailableSlots: vendor id=%d not found in catalog", req.VendorID)
				return nil, ErrVendorNotFound
			}
			uc.logger.Error("GetAvailableSlots: failed to get services for vendor id=%d: %v", req.VendorID, err)
			return nil, fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
		}

		totalDuration, err = resolveTotalDuration(req.ServiceIDs, services)
		if err != nil {
			uc.logger.Warn("GetAvailableSlots: service resolution failed: %v", err)
			return nil, err
		}
	}

	// 3. Получаем окно работы на день недели
	// Отсутствие записи означает закрытый день, а не "открыт круглосуточно"
	window, err := uc.scheduleRepo.GetOperatingWindow(ctx, req.VendorID, req.Date.Weekday())
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrWindowNotFound) {
			window = domain.ClosedWindow(req.VendorID, req.Date.Weekday())
		} else {
			uc.logger.Error("GetAvailableSlots: failed to get operating window: %v", err)
			return nil, fmt.Errorf("%w: failed to get operating window: %v", ErrInternal, err)
		}
	}

	if window.IsClosed {
		uc.logger.Info("GetAvailableSlots: vendor=%d is closed on %s",
			req.VendorID, req.Date.Format(domain.DateFormat))
		return &Response{
			VendorID:        req.VendorID,
			Date:            req.Date,
			DurationMinutes: totalDuration,
			Slots:           []Slot{},
		}, nil
	}

	envelope, err := window.Envelope(req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: malformed operating window for vendor=%d: %v", req.VendorID, err)
		return nil, fmt.Errorf("%w: malformed operating window: %v", ErrInternal, err)
	}

	// 4. Загружаем occupancy-срез на сутки: активные бронирования + блокировки
	// Чтение без блокировок - витрина доступности; гарантии дает протокол создания
	day := dayBounds(req.Date)

	bookings, err := uc.bookingRepo.GetOverlapping(ctx, req.VendorID, day)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	blocked, err := uc.scheduleRepo.ListBlockedOverlapping(ctx, req.VendorID, day)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get blocked times: %v", err)
		return nil, fmt.Errorf("%w: failed to get blocked times: %v", ErrInternal, err)
	}

	occupancy := &domain.Occupancy{Bookings: bookings, Blocked: blocked}

	// 5. Генерируем сетку слотов
	slots := generateSlots(
		envelope,
		occupancy,
		time.Duration(totalDuration)*time.Minute,
		time.Duration(domain.DefaultSlotIntervalMinutes)*time.Minute,
	)

	uc.logger.Info("GetAvailableSlots: generated %d slots for vendor=%d, date=%s",
		len(slots), req.VendorID, req.Date.Format(domain.DateFormat))

	result := make([]Slot, len(slots))
	for i, s := range slots {
		result[i] = Slot{
			StartTime: s.Interval.Start,
			EndTime:   s.Interval.End,
			Available: s.Available,
		}
	}

	return &Response{
		VendorID:        req.VendorID,
		Date:            req.Date,
		DurationMinutes: totalDuration,
		Slots:           result,
	}, nil
}
