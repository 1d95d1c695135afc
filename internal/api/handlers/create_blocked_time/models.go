package create_blocked_time

import (
	"time"

	"github.com/mntdherm/CW-BookingService/internal/service/schedule/models"
)

// CreateBlockedTimeRequest HTTP request model
type CreateBlockedTimeRequest struct {
	StartTime string `json:"startTime"` // RFC3339
	EndTime   string `json:"endTime"`   // RFC3339
	Reason    string `json:"reason"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateBlockedTimeRequest) ToServiceRequest(vendorID, requesterID int64) (*models.CreateBlockedTimeRequest, error) {
	startTime, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := time.Parse(time.RFC3339, r.EndTime)
	if err != nil {
		return nil, err
	}

	return &models.CreateBlockedTimeRequest{
		VendorID:    vendorID,
		RequesterID: requesterID,
		StartTime:   startTime,
		EndTime:     endTime,
		Reason:      r.Reason,
	}, nil
}
