package centres

import (
	"context"

	"github.com/quickcourt/QC-BookingService/internal/domain"
)

// CentreRepository интерфейс репозитория каталога площадок
type CentreRepository interface {
	CreateCentre(ctx context.Context, centre *domain.Centre) (*domain.Centre, error)
	CreateSport(ctx context.Context, sport *domain.Sport) (*domain.Sport, error)
	CreateCourt(ctx context.Context, court *domain.Court) (*domain.Court, error)
	GetCentreByID(ctx context.Context, id int64) (*domain.Centre, error)
	GetSportByID(ctx context.Context, sportID int64) (*domain.Sport, error)
	ListCentres(ctx context.Context) ([]*domain.Centre, error)
	ListSportsByCentre(ctx context.Context, centreID int64) ([]*domain.Sport, error)
	ListCourtsBySport(ctx context.Context, sportID int64) ([]*domain.Court, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
