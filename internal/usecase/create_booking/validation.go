package create_booking

import (
	"fmt"

	"github.com/mntdherm/CW-BookingService/internal/domain"
	"github.com/mntdherm/CW-BookingService/internal/integrations/catalogservice"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	if req.VendorID <= 0 {
		return fmt.Errorf("%w: vendorID must be positive", ErrInvalidInput)
	}

	// Бронирование без услуг запрещено: суммарная длительность была бы
	// нулевой, а нулевые интервалы невалидны
	if len(req.ServiceIDs) == 0 {
		return ErrNoServicesSelected
	}

	for _, id := range req.ServiceIDs {
		if id <= 0 {
			return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
		}
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// resolveServices проверяет услуги из каталога против запрошенных
// идентификаторов и возвращает снапшоты для записи в booking_services.
// Отсутствующая или скрытая услуга отклоняет бронирование целиком -
// частичных вставок не бывает
func resolveServices(requested []int64, services []*catalogservice.Service) ([]domain.BookingService, error) {
	byID := make(map[int64]*catalogservice.Service, len(services))
	for _, s := range services {
		byID[s.ID] = s
	}

	snapshots := make([]domain.BookingService, 0, len(requested))
	for _, id := range requested {
		s, ok := byID[id]
		if !ok || !s.IsVisible {
			return nil, fmt.Errorf("%w: service id=%d", ErrServiceNotFound, id)
		}
		snapshots = append(snapshots, domain.BookingService{
			ServiceID:       s.ID,
			ServiceName:     s.Name,
			Price:           s.Price,
			DurationMinutes: s.DurationMinutes,
		})
	}

	return snapshots, nil
}

// totals возвращает суммарную длительность (минуты) и цену по снапшотам
func totals(snapshots []domain.BookingService) (int, float64) {
	duration := 0
	price := 0.0
	for _, s := range snapshots {
		duration += s.DurationMinutes
		price += s.Price
	}
	return duration, price
}
