package models

import (
	"errors"
	"time"

	"github.com/mntdherm/CW-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	RequesterID        int64  `json:"-"`                  // ID пользователя, выполняющего отмену
	CancellationReason string `json:"cancellationReason"` // Причина отмены
}

// UpdateStatusRequest запрос на обновление статуса бронирования
type UpdateStatusRequest struct {
	RequesterID int64  `json:"-"`      // ID пользователя (должен быть вендором бронирования)
	Status      string `json:"status"` // Новый статус
}

// GetCustomerBookingsRequest запрос истории бронирований клиента
type GetCustomerBookingsRequest struct {
	CustomerID  int64   // Чьи бронирования запрашиваются
	RequesterID int64   // Кто запрашивает
	Status      *string // Фильтр по статусу (опционально)
}

// GetVendorBookingsRequest запрос бронирований вендора (календарь)
type GetVendorBookingsRequest struct {
	VendorID         int64      // ID вендора
	RequesterID      int64      // Кто запрашивает
	StartDate        *time.Time // Начало периода (опционально)
	EndDate          *time.Time // Конец периода (опционально)
	Status           *string    // Фильтр по статусу (опционально)
	IncludeCancelled bool       // Включать ли отмененные
}

// ToDomainFilter конвертирует запрос в доменный фильтр
func (r *GetVendorBookingsRequest) ToDomainFilter() (domain.VendorBookingsFilter, error) {
	filter := domain.VendorBookingsFilter{
		VendorID:         r.VendorID,
		StartDate:        r.StartDate,
		EndDate:          r.EndDate,
		IncludeCancelled: r.IncludeCancelled,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return domain.VendorBookingsFilter{}, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse бронирование в ответе сервиса
type BookingResponse struct {
	ID                 int64                    `json:"id"`
	VendorID           int64                    `json:"vendorId"`
	CustomerID         int64                    `json:"customerId"`
	StartTime          time.Time                `json:"startTime"`
	EndTime            time.Time                `json:"endTime"`
	Status             string                   `json:"status"`
	TotalPrice         float64                  `json:"totalPrice"`
	Notes              *string                  `json:"notes,omitempty"`
	Services           []BookingServiceResponse `json:"services"`
	CancellationReason *string                  `json:"cancellationReason,omitempty"`
	CancelledAt        *time.Time               `json:"cancelledAt,omitempty"`
	CreatedAt          time.Time                `json:"createdAt"`
	UpdatedAt          time.Time                `json:"updatedAt"`
}

// BookingServiceResponse снапшот услуги в ответе сервиса
type BookingServiceResponse struct {
	ServiceID       int64   `json:"serviceId"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// FromDomainBooking конвертирует доменную модель в ответ сервиса
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	services := make([]BookingServiceResponse, len(b.Services))
	for i, s := range b.Services {
		services[i] = BookingServiceResponse{
			ServiceID:       s.ServiceID,
			Name:            s.ServiceName,
			Price:           s.Price,
			DurationMinutes: s.DurationMinutes,
		}
	}

	return &BookingResponse{
		ID:                 b.ID,
		VendorID:           b.VendorID,
		CustomerID:         b.CustomerID,
		StartTime:          b.StartTime,
		EndTime:            b.EndTime,
		Status:             string(b.Status),
		TotalPrice:         b.TotalPrice,
		Notes:              b.Notes,
		Services:           services,
		CancellationReason: b.CancellationReason,
		CancelledAt:        b.CancelledAt,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список доменных моделей в ответ сервиса
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		result[i] = *FromDomainBooking(b)
	}
	return &BookingListResponse{Bookings: result, Total: len(result)}
}

// ToDomainBookingStatus валидирует и конвертирует статус из строки
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	switch domain.BookingStatus(s) {
	case domain.StatusPending, domain.StatusConfirmed, domain.StatusCancelled, domain.StatusCompleted:
		return domain.BookingStatus(s), nil
	default:
		return "", ErrInvalidStatus
	}
}
