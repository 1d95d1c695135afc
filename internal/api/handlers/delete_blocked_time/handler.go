package delete_blocked_time

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mntdherm/CW-BookingService/internal/api/handlers"
	"github.com/mntdherm/CW-BookingService/internal/api/middleware"
	"github.com/mntdherm/CW-BookingService/internal/service/schedule"
	"github.com/mntdherm/CW-BookingService/internal/service/schedule/models"
)

const (
	msgInvalidVendorID      = "некорректный ID вендора"
	msgInvalidBlockedTimeID = "некорректный ID блокировки"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgForbidden            = "доступ запрещен"
	msgNotFound             = "блокировка не найдена"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/vendors/{vendorId}/blocked-times/{blockedTimeId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	vendorID, err := strconv.ParseInt(vars["vendorId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /vendors/{id}/blocked-times/{id} - Invalid vendor ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVendorID)
		return
	}

	blockedTimeID, err := strconv.ParseInt(vars["blockedTimeId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /vendors/{id}/blocked-times/{id} - Invalid blocked time ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBlockedTimeID)
		return
	}

	requesterID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /vendors/{id}/blocked-times/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	req := &models.DeleteBlockedTimeRequest{
		VendorID:      vendorID,
		RequesterID:   requesterID,
		BlockedTimeID: blockedTimeID,
	}

	if err := h.service.DeleteBlockedTime(r.Context(), req); err != nil {
		switch {
		case errors.Is(err, schedule.ErrBlockedTimeNotFound):
			h.logger.Warn("DELETE /vendors/{id}/blocked-times/{id} - Blocked time not found: vendor_id=%d, id=%d",
				vendorID, blockedTimeID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, schedule.ErrAccessDenied):
			h.logger.Warn("DELETE /vendors/{id}/blocked-times/{id} - Access denied: vendor_id=%d, requester_id=%d",
				vendorID, requesterID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /vendors/{id}/blocked-times/{id} - Failed to delete blocked time: vendor_id=%d, id=%d, error=%v",
				vendorID, blockedTimeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /vendors/{id}/blocked-times/{id} - Blocked time deleted successfully: vendor_id=%d, id=%d",
		vendorID, blockedTimeID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
