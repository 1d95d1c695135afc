package get_vendor_bookings

import (
	"net/url"
	"strconv"
	"time"

	"github.com/mntdherm/CW-BookingService/internal/domain"
	"github.com/mntdherm/CW-BookingService/internal/service/bookings/models"
)

// ToServiceRequest собирает запрос сервиса из path и query параметров
func ToServiceRequest(vendorID, requesterID int64, query url.Values) (*models.GetVendorBookingsRequest, error) {
	req := &models.GetVendorBookingsRequest{
		VendorID:    vendorID,
		RequesterID: requesterID,
	}

	if startDateStr := query.Get("startDate"); startDateStr != "" {
		startDate, err := time.Parse(domain.DateFormat, startDateStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &startDate
	}

	if endDateStr := query.Get("endDate"); endDateStr != "" {
		endDate, err := time.Parse(domain.DateFormat, endDateStr)
		if err != nil {
			return nil, err
		}
		req.EndDate = &endDate
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	if includeCancelledStr := query.Get("includeCancelled"); includeCancelledStr != "" {
		includeCancelled, err := strconv.ParseBool(includeCancelledStr)
		if err != nil {
			return nil, err
		}
		req.IncludeCancelled = includeCancelled
	}

	return req, nil
}
