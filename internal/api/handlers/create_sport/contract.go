package create_sport

import (
	"context"

	"github.com/quickcourt/QC-BookingService/internal/domain"
)

type CentreService interface {
	CreateSport(ctx context.Context, centreID int64, name string) (*domain.Sport, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
