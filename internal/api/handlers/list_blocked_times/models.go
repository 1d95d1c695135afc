package list_blocked_times

import (
	"errors"
	"net/url"
	"time"

	"github.com/mntdherm/CW-BookingService/internal/domain"
	"github.com/mntdherm/CW-BookingService/internal/service/schedule/models"
)

var errMissingPeriod = errors.New("either date or from/to params are required")

// ToServiceRequest собирает запрос сервиса из path и query параметров
// Принимается либо date (один день), либо пара from/to (период)
func ToServiceRequest(vendorID, requesterID int64, query url.Values) (*models.ListBlockedTimesRequest, error) {
	req := &models.ListBlockedTimesRequest{
		VendorID:    vendorID,
		RequesterID: requesterID,
	}

	if dateStr := query.Get("date"); dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			return nil, err
		}
		req.From = date
		req.To = date.AddDate(0, 0, 1)
		return req, nil
	}

	fromStr, toStr := query.Get("from"), query.Get("to")
	if fromStr == "" || toStr == "" {
		return nil, errMissingPeriod
	}

	from, err := time.Parse(domain.DateFormat, fromStr)
	if err != nil {
		return nil, err
	}
	to, err := time.Parse(domain.DateFormat, toStr)
	if err != nil {
		return nil, err
	}

	req.From = from
	// Верхняя граница включает весь последний день периода
	req.To = to.AddDate(0, 0, 1)
	return req, nil
}
