package get_available_slots

import (
	"fmt"

	"github.com/mntdherm/CW-BookingService/internal/integrations/catalogservice"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.VendorID <= 0 {
		return fmt.Errorf("%w: vendorID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	for _, id := range req.ServiceIDs {
		if id <= 0 {
			return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
		}
	}

	return nil
}

// resolveTotalDuration проверяет список услуг из каталога против запрошенных
// идентификаторов и возвращает суммарную длительность в минутах.
// Отсутствующая или скрытая услуга - ошибка: клиент работает с устаревшим каталогом
func resolveTotalDuration(requested []int64, services []*catalogservice.Service) (int, error) {
	byID := make(map[int64]*catalogservice.Service, len(services))
	for _, s := range services {
		byID[s.ID] = s
	}

	total := 0
	for _, id := range requested {
		s, ok := byID[id]
		if !ok || !s.IsVisible {
			return 0, fmt.Errorf("%w: service id=%d", ErrServiceNotFound, id)
		}
		total += s.DurationMinutes
	}

	if total <= 0 {
		return 0, fmt.Errorf("%w: services sum to %d minutes", ErrInvalidDuration, total)
	}

	return total, nil
}
