package get_vendor_bookings

import (
	"context"

	"github.com/mntdherm/CW-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetVendorBookings(ctx context.Context, req *models.GetVendorBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
