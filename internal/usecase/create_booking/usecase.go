package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/quickcourt/QC-BookingService/internal/domain"
	bookingRepo "github.com/quickcourt/QC-BookingService/internal/infra/storage/booking"
	centreRepo "github.com/quickcourt/QC-BookingService/internal/infra/storage/centre"
	userRepo "github.com/quickcourt/QC-BookingService/internal/infra/storage/user"
	"github.com/quickcourt/QC-BookingService/internal/integrations/mailer"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	centreRepo   CentreRepository
	userRepo     UserRepository
	txManager    TransactionManager
	notifier     Notifier
	policy       domain.SlotPolicy
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	centreRepo CentreRepository,
	userRepo UserRepository,
	txManager TransactionManager,
	notifier Notifier,
	policy domain.SlotPolicy,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		centreRepo:   centreRepo,
		userRepo:     userRepo,
		txManager:    txManager,
		notifier:     notifier,
		policy:       policy,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка пересечений и вставка идут в одной сериализуемой транзакции
// с блокировкой дня корта, так что два конкурентных запроса на
// пересекающиеся интервалы не могут пройти оба.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, centre=%d, sport=%d, court=%d, date=%s, start=%s",
		req.UserID, req.CentreID, req.SportID, req.CourtID, req.Date.Format(domain.DateFormat), req.Start)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Конец интервала: явный либо start + шаг сетки
	end, err := resolveEnd(req.Start, req.End, uc.policy)
	if err != nil {
		uc.logger.Warn("CreateBooking: failed to resolve end time: %v", err)
		return nil, err
	}

	if err := validateTimeRange(req.Start, end, uc.policy); err != nil {
		uc.logger.Warn("CreateBooking: time range validation failed: %v", err)
		return nil, err
	}

	// 3. Проверяем цепочку принадлежности: центр -> спорт -> корт
	centre, err := uc.centreRepo.GetCentreByID(ctx, req.CentreID)
	if err != nil {
		if errors.Is(err, centreRepo.ErrCentreNotFound) {
			uc.logger.Warn("CreateBooking: centre id=%d not found", req.CentreID)
			return nil, ErrCentreNotFound
		}
		uc.logger.Error("CreateBooking: failed to get centre id=%d: %v", req.CentreID, err)
		return nil, fmt.Errorf("%w: failed to get centre: %v", ErrInternal, err)
	}

	sport, err := uc.centreRepo.GetSportInCentre(ctx, req.SportID, req.CentreID)
	if err != nil {
		if errors.Is(err, centreRepo.ErrSportNotFound) {
			uc.logger.Warn("CreateBooking: sport id=%d not found in centre id=%d", req.SportID, req.CentreID)
			return nil, ErrSportNotFound
		}
		uc.logger.Error("CreateBooking: failed to get sport id=%d: %v", req.SportID, err)
		return nil, fmt.Errorf("%w: failed to get sport: %v", ErrInternal, err)
	}

	court, err := uc.centreRepo.GetCourtInSport(ctx, req.CourtID, req.SportID)
	if err != nil {
		if errors.Is(err, centreRepo.ErrCourtNotFound) {
			uc.logger.Warn("CreateBooking: court id=%d not found for sport id=%d", req.CourtID, req.SportID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("CreateBooking: failed to get court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	// 4. Получаем пользователя, его email нужен для подтверждения
	user, err := uc.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("CreateBooking: user id=%d not found", req.UserID)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("CreateBooking: failed to get user id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	var result *domain.Booking

	// 5. Проверка пересечений и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Читаем бронирования корта на дату с блокировкой (FOR UPDATE)
		existing, err := uc.bookingRepo.GetByCourtAndDate(txCtx, req.CourtID, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 5.2. Строгое пересечение: смежные интервалы не конфликтуют
		for _, booking := range existing {
			if booking.OverlapsWindow(req.Start, end) {
				uc.logger.Warn("CreateBooking: slot %s-%s overlaps booking id=%d on court=%d",
					req.Start, end, booking.ID, req.CourtID)
				return ErrSlotAlreadyBooked
			}
		}

		// 5.3. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, &domain.Booking{
			CentreID:    req.CentreID,
			SportID:     req.SportID,
			CourtID:     req.CourtID,
			UserID:      req.UserID,
			BookingDate: req.Date,
			StartTime:   req.Start,
			EndTime:     end,
		})
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotAlreadyBooked) {
				return ErrSlotAlreadyBooked
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	resp := buildResponse(result, centre, sport, court)

	// 6. Подтверждение на почту, ошибка отправки бронирование не ломает
	uc.sendConfirmation(user, centre, sport, court, resp)

	return resp, nil
}

func buildResponse(b *domain.Booking, centre *domain.Centre, sport *domain.Sport, court *domain.Court) *Response {
	resp := &Response{
		ID:             b.ID,
		CentreID:       b.CentreID,
		SportID:        b.SportID,
		CourtID:        b.CourtID,
		UserID:         b.UserID,
		CentreName:     centre.Name,
		CentreLocation: centre.Location,
		SportName:      sport.Name,
		CourtName:      court.Name,
		Date:           b.FormattedDate(),
		StartTime:      b.FormattedStartTime(),
		EndTime:        b.FormattedEndTime(),
	}

	if start, err := b.StartInstant(); err == nil {
		resp.StartDateTimeIST = start.Format(time.RFC3339)
	}
	if end, err := b.EndInstant(); err == nil {
		resp.EndDateTimeIST = end.Format(time.RFC3339)
	}

	return resp
}

func (uc *UseCase) sendConfirmation(user *domain.User, centre *domain.Centre, sport *domain.Sport, court *domain.Court, resp *Response) {
	body := mailer.BuildBookingConfirmation(mailer.BookingConfirmation{
		UserName:   user.Name,
		CentreName: centre.Name,
		Location:   centre.Location,
		SportName:  sport.Name,
		CourtName:  court.Name,
		Date:       resp.Date,
		StartTime:  resp.StartTime,
		EndTime:    resp.EndTime,
	})

	if err := uc.notifier.Send(user.Email, mailer.ConfirmationSubject, body); err != nil {
		uc.logger.Error("CreateBooking: failed to send confirmation to %s: %v", user.Email, err)
	}
}
