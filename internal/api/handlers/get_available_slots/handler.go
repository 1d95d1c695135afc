package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mntdherm/CW-BookingService/internal/api/handlers"
	getAvailableSlots "github.com/mntdherm/CW-BookingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidVendorID = "некорректный ID вендора"
	msgMissingDate     = "дата обязательна"
	msgInvalidParams   = "некорректные параметры запроса"
	msgVendorNotFound  = "вендор не найден"
	msgServiceNotFound = "услуга не найдена"
	msgInvalidDuration = "некорректная суммарная длительность услуг"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/vendors/{vendorId}/available-slots
// Query params: date (required, YYYY-MM-DD), serviceIds (optional, "1,2,3")
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	vendorIDStr := vars["vendorId"]
	vendorID, err := strconv.ParseInt(vendorIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /vendors/{id}/available-slots - Invalid vendor ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVendorID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /vendors/{id}/available-slots - Missing date: vendor_id=%d", vendorID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	serviceIDsStr := r.URL.Query().Get("serviceIds")

	// Формируем запрос к use case (с парсингом даты и списка услуг)
	useCaseReq, err := ToUseCaseRequest(vendorID, dateStr, serviceIDsStr)
	if err != nil {
		h.logger.Warn("GET /vendors/{id}/available-slots - Invalid params: vendor_id=%d: %v", vendorID, err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrVendorNotFound):
			h.logger.Warn("GET /vendors/{id}/available-slots - Vendor not found: vendor_id=%d", vendorID)
			handlers.RespondNotFound(w, msgVendorNotFound)

		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /vendors/{id}/available-slots - Service not found: vendor_id=%d, service_ids=%s",
				vendorID, serviceIDsStr)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidDuration):
			h.logger.Warn("GET /vendors/{id}/available-slots - Invalid duration: vendor_id=%d, service_ids=%s",
				vendorID, serviceIDsStr)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /vendors/{id}/available-slots - Invalid input: vendor_id=%d: %v", vendorID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /vendors/{id}/available-slots - Failed to get slots: vendor_id=%d, error=%v",
				vendorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /vendors/{id}/available-slots - Slots retrieved successfully: vendor_id=%d, date=%s, slots_count=%d",
		vendorID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
