package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/quickcourt/QC-BookingService/internal/domain"
	centreRepo "github.com/quickcourt/QC-BookingService/internal/infra/storage/centre"
)

// UseCase use case для получения сетки слотов корта на день
type UseCase struct {
	bookingRepo  BookingRepository
	centreRepo   CentreRepository
	policy       domain.SlotPolicy
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	centreRepo CentreRepository,
	policy domain.SlotPolicy,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		centreRepo:   centreRepo,
		policy:       policy,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения слотов.
// Сетка детерминирована: для одной и той же даты и политики состав
// слотов всегда одинаков, меняются только флаги занятости.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: centre=%d, sport=%d, court=%d, date=%s",
		req.CentreID, req.SportID, req.CourtID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем цепочку принадлежности: центр -> спорт -> корт
	if _, err := uc.centreRepo.GetCentreByID(ctx, req.CentreID); err != nil {
		if errors.Is(err, centreRepo.ErrCentreNotFound) {
			uc.logger.Warn("GetAvailableSlots: centre id=%d not found", req.CentreID)
			return nil, ErrCentreNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get centre id=%d: %v", req.CentreID, err)
		return nil, fmt.Errorf("%w: failed to get centre: %v", ErrInternal, err)
	}

	if _, err := uc.centreRepo.GetSportInCentre(ctx, req.SportID, req.CentreID); err != nil {
		if errors.Is(err, centreRepo.ErrSportNotFound) {
			uc.logger.Warn("GetAvailableSlots: sport id=%d not found in centre id=%d", req.SportID, req.CentreID)
			return nil, ErrSportNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get sport id=%d: %v", req.SportID, err)
		return nil, fmt.Errorf("%w: failed to get sport: %v", ErrInternal, err)
	}

	if _, err := uc.centreRepo.GetCourtInSport(ctx, req.CourtID, req.SportID); err != nil {
		if errors.Is(err, centreRepo.ErrCourtNotFound) {
			uc.logger.Warn("GetAvailableSlots: court id=%d not found for sport id=%d", req.CourtID, req.SportID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	// 3. Получаем бронирования корта на дату
	bookings, err := uc.bookingRepo.GetByCourtAndDate(ctx, req.CourtID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 4. Строим сетку и помечаем занятые слоты
	slots, err := buildSlots(uc.policy, req.Date, bookings)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to build slots: %v", err)
		return nil, fmt.Errorf("%w: failed to build slots: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for court=%d, date=%s",
		len(slots), req.CourtID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:     req.Date,
		CentreID: req.CentreID,
		SportID:  req.SportID,
		CourtID:  req.CourtID,
		Slots:    slots,
	}, nil
}
