package get_available_slots

import (
	"time"

	"github.com/mntdherm/CW-BookingService/internal/domain"
)

// generateSlots генерирует сетку слотов внутри рабочего окна дня.
// Курсор идет от открытия с фиксированным шагом slotInterval; каждый
// кандидат имеет длину totalDuration. Слоты, не помещающиеся до закрытия,
// не эмитятся: бронирование не может выходить за время закрытия.
//
// Занятые слоты не выбрасываются, а помечаются Available=false -
// клиенту нужна полная сетка дня.
//
// Примеры (окно 09:00-12:00, шаг 30 мин, длительность 60 мин):
// - последний слот 11:00-12:00 (заканчивается ровно в закрытие)
// - слота 11:30 нет (закончился бы в 12:30, после закрытия)
func generateSlots(
	envelope domain.TimeInterval,
	occupancy *domain.Occupancy,
	totalDuration time.Duration,
	slotInterval time.Duration,
) []domain.Slot {
	slots := make([]domain.Slot, 0)

	for cursor := envelope.Start; cursor.Before(envelope.End); cursor = cursor.Add(slotInterval) {
		candidateEnd := cursor.Add(totalDuration)
		if candidateEnd.After(envelope.End) {
			// Дальше по сетке кандидаты только позже - можно останавливаться
			break
		}

		candidate := domain.TimeInterval{Start: cursor, End: candidateEnd}

		slots = append(slots, domain.Slot{
			Interval:  candidate,
			Available: !occupancy.ConflictsWith(candidate),
		})
	}

	return slots
}

// dayBounds возвращает границы суток даты [00:00, 00:00 следующего дня)
func dayBounds(date time.Time) domain.TimeInterval {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return domain.TimeInterval{Start: start, End: start.AddDate(0, 0, 1)}
}
