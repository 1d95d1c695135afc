package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/mntdherm/CW-BookingService/internal/domain"
	bookingRepo "github.com/mntdherm/CW-BookingService/internal/infra/storage/booking"
	"github.com/mntdherm/CW-BookingService/internal/service/bookings/models"
)

// Service сервис жизненного цикла бронирований: просмотр, отмена,
// смена статуса вендором. Создание бронирований живет в отдельном
// usecase с транзакционным протоколом
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
// Доступно клиенту бронирования и вендору, у которого оно сделано
func (s *Service) GetByID(ctx context.Context, id int64, requesterID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, requesterID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if !canAccess(booking, requesterID) {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", requesterID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBooking(booking), nil
}

// GetCustomerBookings получает историю бронирований клиента
// Клиент видит только собственную историю
func (s *Service) GetCustomerBookings(ctx context.Context, req *models.GetCustomerBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetCustomerBookings: customer=%d, requester=%d", req.CustomerID, req.RequesterID)

	if req.CustomerID != req.RequesterID {
		s.logger.Warn("GetCustomerBookings: access denied for user=%d to customer=%d bookings",
			req.RequesterID, req.CustomerID)
		return nil, ErrAccessDenied
	}

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetCustomerBookings: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByCustomerID(ctx, req.CustomerID, domainStatus)
	if err != nil {
		s.logger.Error("GetCustomerBookings: repository error for customer=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: GetCustomerBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetCustomerBookings: fetched %d bookings for customer=%d", len(bookings), req.CustomerID)
	return models.FromDomainBookingList(bookings), nil
}

// GetVendorBookings получает бронирования вендора за период (календарь)
// Доступно только самому вендору
func (s *Service) GetVendorBookings(ctx context.Context, req *models.GetVendorBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetVendorBookings: vendor=%d, requester=%d", req.VendorID, req.RequesterID)

	if req.VendorID != req.RequesterID {
		s.logger.Warn("GetVendorBookings: access denied for user=%d to vendor=%d bookings",
			req.RequesterID, req.VendorID)
		return nil, ErrAccessDenied
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetVendorBookings: invalid filter for vendor=%d: %v", req.VendorID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByVendorWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetVendorBookings: repository error for vendor=%d: %v", req.VendorID, err)
		return nil, fmt.Errorf("%w: GetVendorBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetVendorBookings: fetched %d bookings for vendor=%d", len(bookings), req.VendorID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование
// Клиент отменяет свое бронирование, вендор - любое свое.
// Отмененное бронирование перестает занимать слот
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, req.RequesterID)

	if len(req.CancellationReason) > domain.MaxReasonLength {
		return fmt.Errorf("%w: cancellation reason too long", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !canAccess(booking, req.RequesterID) {
		s.logger.Warn("Cancel: access denied for user=%d to booking id=%d", req.RequesterID, bookingID)
		return ErrAccessDenied
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID, req.CancellationReason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}

// UpdateStatus обновляет статус бронирования (подтверждение, завершение)
// Доступно только вендору бронирования
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: booking id=%d -> status=%s by user=%d", bookingID, req.Status, req.RequesterID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if booking.VendorID != req.RequesterID {
		s.logger.Warn("UpdateStatus: access denied for user=%d to booking id=%d", req.RequesterID, bookingID)
		return ErrAccessDenied
	}

	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, bookingID)
		return fmt.Errorf("%w: %s", ErrInvalidStatus, req.Status)
	}

	if !isAllowedTransition(booking.Status, newStatus) {
		s.logger.Warn("UpdateStatus: transition %s -> %s not allowed for booking id=%d",
			booking.Status, newStatus, bookingID)
		return fmt.Errorf("%w: transition %s -> %s", ErrInvalidStatus, booking.Status, newStatus)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: booking id=%d updated to status=%s", bookingID, newStatus)
	return nil
}

// canAccess проверяет доступ к бронированию: клиент или вендор бронирования
func canAccess(booking *domain.Booking, requesterID int64) bool {
	return booking.CustomerID == requesterID || booking.VendorID == requesterID
}

// isAllowedTransition проверяет допустимость перехода статуса вендором
// Отмена идет через Cancel (с причиной), а не через UpdateStatus
func isAllowedTransition(from, to domain.BookingStatus) bool {
	switch from {
	case domain.StatusPending:
		return to == domain.StatusConfirmed
	case domain.StatusConfirmed:
		return to == domain.StatusCompleted
	default:
		return false
	}
}
