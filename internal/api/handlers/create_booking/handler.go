package create_booking

import (
	"errors"
	"net/http"

	"github.com/mntdherm/CW-BookingService/internal/api/handlers"
	"github.com/mntdherm/CW-BookingService/internal/api/middleware"
	createBooking "github.com/mntdherm/CW-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStartTime   = "некорректный формат времени начала, ожидается RFC3339"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgSlotNotAvailable   = "выбранный временной слот недоступен"
	msgVendorNotFound     = "вендор не найден"
	msgServiceNotFound    = "услуга не найдена"
	msgNoServices         = "не выбрано ни одной услуги"
	msgVendorClosed       = "вендор закрыт в выбранную дату"
	msgOutsideHours       = "бронирование выходит за рабочие часы"
	msgInvalidDuration    = "некорректная суммарная длительность услуг"
	msgInvalidInput       = "некорректные данные бронирования"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом времени)
	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse start time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStartTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: user_id=%d, vendor_id=%d", userID, req.VendorID)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrVendorNotFound):
			h.logger.Warn("POST /bookings - Vendor not found: vendor_id=%d", req.VendorID)
			handlers.RespondNotFound(w, msgVendorNotFound)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Service not found: user_id=%d, vendor_id=%d", userID, req.VendorID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrNoServicesSelected):
			h.logger.Warn("POST /bookings - No services selected: user_id=%d, vendor_id=%d", userID, req.VendorID)
			handlers.RespondBadRequest(w, msgNoServices)

		case errors.Is(err, createBooking.ErrVendorClosed):
			h.logger.Warn("POST /bookings - Vendor closed: user_id=%d, vendor_id=%d", userID, req.VendorID)
			handlers.RespondBadRequest(w, msgVendorClosed)

		case errors.Is(err, createBooking.ErrOutsideOperatingHours):
			h.logger.Warn("POST /bookings - Outside operating hours: user_id=%d, vendor_id=%d", userID, req.VendorID)
			handlers.RespondBadRequest(w, msgOutsideHours)

		case errors.Is(err, createBooking.ErrInvalidDuration):
			h.logger.Warn("POST /bookings - Invalid duration: user_id=%d, vendor_id=%d", userID, req.VendorID)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d, vendor_id=%d: %v", userID, req.VendorID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, vendor_id=%d, error=%v",
				userID, req.VendorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%d, vendor_id=%d",
		result.ID, userID, req.VendorID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
