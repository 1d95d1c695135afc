package get_vendor_schedule

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mntdherm/CW-BookingService/internal/api/handlers"
)

const msgInvalidVendorID = "некорректный ID вендора"

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

// Handle GET /api/v1/vendors/{vendorId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	vendorIDStr := vars["vendorId"]

	vendorID, err := strconv.ParseInt(vendorIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /vendors/{id}/schedule - Invalid vendor ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVendorID)
		return
	}

	result, err := h.service.GetSchedule(r.Context(), vendorID)
	if err != nil {
		h.logger.Error("GET /vendors/{id}/schedule - Failed to get schedule: vendor_id=%d, error=%v",
			vendorID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /vendors/{id}/schedule - Schedule retrieved successfully: vendor_id=%d", vendorID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
