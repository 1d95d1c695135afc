package list_blocked_times

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mntdherm/CW-BookingService/internal/api/handlers"
	"github.com/mntdherm/CW-BookingService/internal/api/middleware"
	"github.com/mntdherm/CW-BookingService/internal/service/schedule"
)

const (
	msgInvalidVendorID = "некорректный ID вендора"
	msgInvalidParams   = "некорректные параметры запроса"
	msgMissingUserID   = "отсутствует ID пользователя"
	msgForbidden       = "доступ запрещен"
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

// Handle GET /api/v1/vendors/{vendorId}/blocked-times
// Query params: date (YYYY-MM-DD) или from + to (YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	vendorIDStr := vars["vendorId"]

	vendorID, err := strconv.ParseInt(vendorIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /vendors/{id}/blocked-times - Invalid vendor ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVendorID)
		return
	}

	requesterID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /vendors/{id}/blocked-times - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	req, err := ToServiceRequest(vendorID, requesterID, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /vendors/{id}/blocked-times - Invalid params: vendor_id=%d: %v", vendorID, err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.ListBlockedTimes(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrAccessDenied):
			h.logger.Warn("GET /vendors/{id}/blocked-times - Access denied: vendor_id=%d, requester_id=%d",
				vendorID, requesterID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("GET /vendors/{id}/blocked-times - Invalid period: vendor_id=%d: %v", vendorID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /vendors/{id}/blocked-times - Failed to list blocked times: vendor_id=%d, error=%v",
				vendorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /vendors/{id}/blocked-times - Blocked times retrieved successfully: vendor_id=%d, count=%d",
		vendorID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
