package centres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/quickcourt/QC-BookingService/internal/domain"
	centreRepo "github.com/quickcourt/QC-BookingService/internal/infra/storage/centre"
)

// Service сервис каталога площадок
type Service struct {
	centreRepo CentreRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(centreRepo CentreRepository, logger Logger) *Service {
	return &Service{
		centreRepo: centreRepo,
		logger:     logger,
	}
}

// CreateCentre создает новый спортивный центр
func (s *Service) CreateCentre(ctx context.Context, name, location string) (*domain.Centre, error) {
	name = strings.TrimSpace(name)
	location = strings.TrimSpace(location)

	if name == "" || len(name) > domain.MaxNameLength {
		return nil, fmt.Errorf("%w: centre name is required and must be at most %d characters", ErrInvalidInput, domain.MaxNameLength)
	}
	if location == "" || len(location) > domain.MaxLocationLength {
		return nil, fmt.Errorf("%w: centre location is required and must be at most %d characters", ErrInvalidInput, domain.MaxLocationLength)
	}

	centre, err := s.centreRepo.CreateCentre(ctx, &domain.Centre{Name: name, Location: location})
	if err != nil {
		s.logger.Error("CreateCentre: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateCentre - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateCentre: created centre id=%d name=%q", centre.ID, centre.Name)
	return centre, nil
}

// CreateSport добавляет вид спорта в существующий центр
func (s *Service) CreateSport(ctx context.Context, centreID int64, name string) (*domain.Sport, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > domain.MaxNameLength {
		return nil, fmt.Errorf("%w: sport name is required and must be at most %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	if _, err := s.centreRepo.GetCentreByID(ctx, centreID); err != nil {
		if errors.Is(err, centreRepo.ErrCentreNotFound) {
			s.logger.Warn("CreateSport: centre id=%d not found", centreID)
			return nil, ErrCentreNotFound
		}
		s.logger.Error("CreateSport: failed to get centre id=%d: %v", centreID, err)
		return nil, fmt.Errorf("%w: CreateSport - repository error: %v", ErrInternal, err)
	}

	sport, err := s.centreRepo.CreateSport(ctx, &domain.Sport{Name: name, CentreID: centreID})
	if err != nil {
		s.logger.Error("CreateSport: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateSport - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateSport: created sport id=%d in centre id=%d", sport.ID, centreID)
	return sport, nil
}

// CreateCourt добавляет корт к существующему виду спорта
func (s *Service) CreateCourt(ctx context.Context, sportID int64, name string) (*domain.Court, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > domain.MaxNameLength {
		return nil, fmt.Errorf("%w: court name is required and must be at most %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	if _, err := s.centreRepo.GetSportByID(ctx, sportID); err != nil {
		if errors.Is(err, centreRepo.ErrSportNotFound) {
			s.logger.Warn("CreateCourt: sport id=%d not found", sportID)
			return nil, ErrSportNotFound
		}
		s.logger.Error("CreateCourt: failed to get sport id=%d: %v", sportID, err)
		return nil, fmt.Errorf("%w: CreateCourt - repository error: %v", ErrInternal, err)
	}

	court, err := s.centreRepo.CreateCourt(ctx, &domain.Court{Name: name, SportID: sportID})
	if err != nil {
		s.logger.Error("CreateCourt: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateCourt - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateCourt: created court id=%d for sport id=%d", court.ID, sportID)
	return court, nil
}

// ListCentres получает все центры
func (s *Service) ListCentres(ctx context.Context) ([]*domain.Centre, error) {
	centres, err := s.centreRepo.ListCentres(ctx)
	if err != nil {
		s.logger.Error("ListCentres: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListCentres - repository error: %v", ErrInternal, err)
	}
	return centres, nil
}

// ListCentreSports получает виды спорта центра.
// Пустой список для существующего центра - валидный ответ.
func (s *Service) ListCentreSports(ctx context.Context, centreID int64) ([]*domain.Sport, error) {
	if _, err := s.centreRepo.GetCentreByID(ctx, centreID); err != nil {
		if errors.Is(err, centreRepo.ErrCentreNotFound) {
			return nil, ErrCentreNotFound
		}
		s.logger.Error("ListCentreSports: failed to get centre id=%d: %v", centreID, err)
		return nil, fmt.Errorf("%w: ListCentreSports - repository error: %v", ErrInternal, err)
	}

	sports, err := s.centreRepo.ListSportsByCentre(ctx, centreID)
	if err != nil {
		s.logger.Error("ListCentreSports: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListCentreSports - repository error: %v", ErrInternal, err)
	}
	return sports, nil
}

// ListSportCourts получает корты вида спорта
func (s *Service) ListSportCourts(ctx context.Context, sportID int64) ([]*domain.Court, error) {
	if _, err := s.centreRepo.GetSportByID(ctx, sportID); err != nil {
		if errors.Is(err, centreRepo.ErrSportNotFound) {
			return nil, ErrSportNotFound
		}
		s.logger.Error("ListSportCourts: failed to get sport id=%d: %v", sportID, err)
		return nil, fmt.Errorf("%w: ListSportCourts - repository error: %v", ErrInternal, err)
	}

	courts, err := s.centreRepo.ListCourtsBySport(ctx, sportID)
	if err != nil {
		s.logger.Error("ListSportCourts: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListSportCourts - repository error: %v", ErrInternal, err)
	}
	return courts, nil
}
