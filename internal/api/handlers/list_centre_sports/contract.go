package list_centre_sports

import (
	"context"

	"github.com/quickcourt/QC-BookingService/internal/domain"
)

type CentreService interface {
	ListCentreSports(ctx context.Context, centreID int64) ([]*domain.Sport, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
