package create_blocked_time

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
	msgInvalidVendorID    = "некорректный ID вендора"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTimes       = "некорректный формат времени, ожидается RFC3339"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "доступ запрещен"
	msgInvalidInterval    = "некорректный интервал блокировки"
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

// Handle POST /api/v1/vendors/{vendorId}/blocked-times
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	vendorIDStr := vars["vendorId"]

	vendorID, err := strconv.ParseInt(vendorIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /vendors/{id}/blocked-times - Invalid vendor ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVendorID)
		return
	}

	var req CreateBlockedTimeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /vendors/{id}/blocked-times - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	requesterID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /vendors/{id}/blocked-times - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	serviceReq, err := req.ToServiceRequest(vendorID, requesterID)
	if err != nil {
		h.logger.Warn("POST /vendors/{id}/blocked-times - Invalid times: vendor_id=%d: %v", vendorID, err)
		handlers.RespondBadRequest(w, msgInvalidTimes)
		return
	}

	result, err := h.service.CreateBlockedTime(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrAccessDenied):
			h.logger.Warn("POST /vendors/{id}/blocked-times - Access denied: vendor_id=%d, requester_id=%d",
				vendorID, requesterID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("POST /vendors/{id}/blocked-times - Invalid interval: vendor_id=%d: %v", vendorID, err)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		default:
			h.logger.Error("POST /vendors/{id}/blocked-times - Failed to create blocked time: vendor_id=%d, error=%v",
				vendorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /vendors/{id}/blocked-times - Blocked time created successfully: id=%d, vendor_id=%d",
		result.ID, vendorID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
