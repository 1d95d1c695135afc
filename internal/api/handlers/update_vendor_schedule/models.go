package update_vendor_schedule

import (
	"github.com/mntdherm/CW-BookingService/internal/service/schedule/models"
)

// UpdateScheduleRequest HTTP request model
type UpdateScheduleRequest struct {
	Windows []models.DayWindow `json:"windows"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateScheduleRequest) ToServiceRequest(vendorID, requesterID int64) *models.UpdateScheduleRequest {
	return &models.UpdateScheduleRequest{
		VendorID:    vendorID,
		RequesterID: requesterID,
		Windows:     r.Windows,
	}
}
