package create_booking

import (
	"time"

	createBooking "github.com/mntdherm/CW-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	VendorID   int64   `json:"vendorId"`
	ServiceIDs []int64 `json:"serviceIds"`
	StartTime  string  `json:"startTime"` // RFC3339, например "2026-03-02T10:00:00+03:00"
	Notes      *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID         int64             `json:"id"`
	VendorID   int64             `json:"vendorId"`
	CustomerID int64             `json:"customerId"`
	StartTime  string            `json:"startTime"`
	EndTime    string            `json:"endTime"`
	Status     string            `json:"status"`
	TotalPrice float64           `json:"totalPrice"`
	Notes      *string           `json:"notes,omitempty"`
	Services   []ServiceSnapshot `json:"services"`
	CreatedAt  string            `json:"createdAt"`
	UpdatedAt  string            `json:"updatedAt"`
}

// ServiceSnapshot снапшот услуги в HTTP ответе
type ServiceSnapshot struct {
	ServiceID       int64   `json:"serviceId"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(customerID int64) (*createBooking.Request, error) {
	// Парсим время начала
	startTime, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		CustomerID: customerID,
		VendorID:   r.VendorID,
		ServiceIDs: r.ServiceIDs,
		StartTime:  startTime,
		Notes:      r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	services := make([]ServiceSnapshot, len(resp.Services))
	for i, s := range resp.Services {
		services[i] = ServiceSnapshot{
			ServiceID:       s.ServiceID,
			Name:            s.Name,
			Price:           s.Price,
			DurationMinutes: s.DurationMinutes,
		}
	}

	return &BookingResponse{
		ID:         resp.ID,
		VendorID:   resp.VendorID,
		CustomerID: resp.CustomerID,
		StartTime:  resp.StartTime.Format(time.RFC3339),
		EndTime:    resp.EndTime.Format(time.RFC3339),
		Status:     resp.Status,
		TotalPrice: resp.TotalPrice,
		Notes:      resp.Notes,
		Services:   services,
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  resp.UpdatedAt.Format(time.RFC3339),
	}
}
