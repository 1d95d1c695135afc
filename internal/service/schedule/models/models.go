package models

import (
	"time"

	"github.com/mntdherm/CW-BookingService/internal/domain"
	"github.com/mntdherm/CW-BookingService/pkg/types"
)

// Request модели

// DayWindow окно работы на один день недели в запросе/ответе сервиса
type DayWindow struct {
	Weekday   int     `json:"weekday"`             // 0 = воскресенье ... 6 = суббота
	OpenTime  *string `json:"openTime,omitempty"`  // "HH:MM", nil для закрытого дня
	CloseTime *string `json:"closeTime,omitempty"` // "HH:MM", nil для закрытого дня
	IsClosed  bool    `json:"isClosed"`
}

// UpdateScheduleRequest запрос на обновление недельного расписания вендора
type UpdateScheduleRequest struct {
	VendorID    int64
	RequesterID int64
	Windows     []DayWindow
}

// CreateBlockedTimeRequest запрос на создание блокировки времени
type CreateBlockedTimeRequest struct {
	VendorID    int64
	RequesterID int64
	StartTime   time.Time
	EndTime     time.Time
	Reason      string
}

// ListBlockedTimesRequest запрос списка блокировок за период
type ListBlockedTimesRequest struct {
	VendorID    int64
	RequesterID int64
	From        time.Time
	To          time.Time
}

// DeleteBlockedTimeRequest запрос на удаление блокировки
type DeleteBlockedTimeRequest struct {
	VendorID      int64
	RequesterID   int64
	BlockedTimeID int64
}

// Response модели

// ScheduleResponse недельное расписание вендора
type ScheduleResponse struct {
	VendorID int64       `json:"vendorId"`
	Windows  []DayWindow `json:"windows"`
}

// BlockedTimeResponse блокировка времени в ответе сервиса
type BlockedTimeResponse struct {
	ID        int64     `json:"id"`
	VendorID  int64     `json:"vendorId"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Reason    *string   `json:"reason,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// BlockedTimeListResponse список блокировок
type BlockedTimeListResponse struct {
	BlockedTimes []BlockedTimeResponse `json:"blockedTimes"`
	Total        int                   `json:"total"`
}

// ToDomainWindow конвертирует окно из запроса в доменную модель
func (w DayWindow) ToDomainWindow(vendorID int64) (*domain.OperatingWindow, error) {
	window := &domain.OperatingWindow{
		VendorID: vendorID,
		Weekday:  time.Weekday(w.Weekday),
		IsClosed: w.IsClosed,
	}

	if !w.IsClosed {
		if w.OpenTime == nil || w.CloseTime == nil {
			return nil, domain.ErrInvalidWindow
		}
		openTime, err := types.NewTimeStringFromString(*w.OpenTime)
		if err != nil {
			return nil, err
		}
		closeTime, err := types.NewTimeStringFromString(*w.CloseTime)
		if err != nil {
			return nil, err
		}
		window.OpenTime = openTime
		window.CloseTime = closeTime
	}

	if err := window.Validate(); err != nil {
		return nil, err
	}

	return window, nil
}

// FromDomainWindow конвертирует доменное окно в модель ответа
func FromDomainWindow(w *domain.OperatingWindow) DayWindow {
	day := DayWindow{
		Weekday:  int(w.Weekday),
		IsClosed: w.IsClosed,
	}
	if !w.IsClosed {
		open := w.OpenTime.String()
		close := w.CloseTime.String()
		day.OpenTime = &open
		day.CloseTime = &close
	}
	return day
}

// FromDomainSchedule собирает недельное расписание из доменных окон
// Дни без записей отдаются как закрытые
func FromDomainSchedule(vendorID int64, windows []*domain.OperatingWindow) *ScheduleResponse {
	byWeekday := make(map[time.Weekday]*domain.OperatingWindow, len(windows))
	for _, w := range windows {
		byWeekday[w.Weekday] = w
	}

	days := make([]DayWindow, 0, 7)
	for weekday := time.Sunday; weekday <= time.Saturday; weekday++ {
		if w, ok := byWeekday[weekday]; ok {
			days = append(days, FromDomainWindow(w))
			continue
		}
		days = append(days, DayWindow{Weekday: int(weekday), IsClosed: true})
	}

	return &ScheduleResponse{VendorID: vendorID, Windows: days}
}

// FromDomainBlockedTime конвертирует доменную блокировку в модель ответа
func FromDomainBlockedTime(b *domain.BlockedTime) BlockedTimeResponse {
	return BlockedTimeResponse{
		ID:        b.ID,
		VendorID:  b.VendorID,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
		Reason:    b.Reason,
		CreatedAt: b.CreatedAt,
	}
}

// FromDomainBlockedTimeList конвертирует список доменных блокировок в ответ
func FromDomainBlockedTimeList(blocked []*domain.BlockedTime) *BlockedTimeListResponse {
	result := make([]BlockedTimeResponse, len(blocked))
	for i, b := range blocked {
		result[i] = FromDomainBlockedTime(b)
	}
	return &BlockedTimeListResponse{BlockedTimes: result, Total: len(result)}
}
