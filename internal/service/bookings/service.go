package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/quickcourt/QC-BookingService/internal/domain"
	bookingRepo "github.com/quickcourt/QC-BookingService/internal/infra/storage/booking"
	"github.com/quickcourt/QC-BookingService/internal/service/bookings/models"
)

// Service сервис для чтения и отмены бронирований
type Service struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// NewServiceWithTimeProvider создает сервис с внешним источником времени
func NewServiceWithTimeProvider(bookingRepo BookingRepository, timeProvider TimeProvider, logger Logger) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetByID получает бронирование по ID.
// Пользователь видит только своё бронирование, менеджер - любое.
func (s *Service) GetByID(ctx context.Context, id int64, userID int64, isManager bool) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	details, err := s.bookingRepo.GetDetailedByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if !isManager && details.UserID != userID {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainDetails(details, s.timeProvider.Now(), isManager), nil
}

// GetUserBookings получает историю бронирований пользователя
func (s *Service) GetUserBookings(ctx context.Context, userID int64) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d", userID)

	details, err := s.bookingRepo.GetDetailedByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: found %d bookings for user=%d", len(details), userID)
	return models.FromDomainDetailsList(details, s.timeProvider.Now(), false), nil
}

// GetAllBookings получает бронирования всех пользователей с фильтрацией.
// Доступно только менеджерам, в ответ включаются данные клиентов.
func (s *Service) GetAllBookings(ctx context.Context, req *models.GetAllBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetAllBookings: fetching bookings, centreID=%v", req.CentreID)

	details, err := s.bookingRepo.GetAllDetailed(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("GetAllBookings: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAllBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetAllBookings: found %d bookings", len(details))
	return models.FromDomainDetailsList(details, s.timeProvider.Now(), true), nil
}

// Cancel отменяет бронирование.
// Отменить можно только своё бронирование и только пока оно не закончилось:
// бронирование, чей конец уже наступил, остаётся в истории навсегда.
func (s *Service) Cancel(ctx context.Context, id int64, userID int64) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if booking.UserID != userID {
		s.logger.Warn("Cancel: access denied for user=%d to booking id=%d", userID, id)
		return ErrAccessDenied
	}

	if err := s.checkCancellable(booking); err != nil {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled: %v", id, err)
		return err
	}

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: failed to delete booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - delete error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", id)
	return nil
}

func (s *Service) checkCancellable(booking *domain.Booking) error {
	if booking.IsPast(s.timeProvider.Now()) {
		return ErrCannotCancel
	}
	return nil
}
