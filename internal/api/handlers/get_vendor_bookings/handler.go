package get_vendor_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mntdherm/CW-BookingService/internal/api/handlers"
	"github.com/mntdherm/CW-BookingService/internal/api/middleware"
	"github.com/mntdherm/CW-BookingService/internal/service/bookings"
)

const (
	msgInvalidVendorID = "некорректный ID вендора"
	msgInvalidParams   = "некорректные параметры запроса"
	msgMissingUserID   = "отсутствует ID пользователя"
	msgForbidden       = "доступ запрещен"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/vendors/{vendorId}/bookings
// Query params: startDate, endDate (YYYY-MM-DD), status, includeCancelled
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	vendorIDStr := vars["vendorId"]

	vendorID, err := strconv.ParseInt(vendorIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /vendors/{id}/bookings - Invalid vendor ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVendorID)
		return
	}

	requesterID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /vendors/{id}/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	req, err := ToServiceRequest(vendorID, requesterID, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /vendors/{id}/bookings - Invalid params: vendor_id=%d: %v", vendorID, err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.GetVendorBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /vendors/{id}/bookings - Access denied: vendor_id=%d, requester_id=%d",
				vendorID, requesterID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /vendors/{id}/bookings - Invalid input: vendor_id=%d: %v", vendorID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /vendors/{id}/bookings - Failed to get bookings: vendor_id=%d, error=%v",
				vendorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /vendors/{id}/bookings - Bookings retrieved successfully: vendor_id=%d, count=%d",
		vendorID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
