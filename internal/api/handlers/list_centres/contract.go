package list_centres

import (
	"context"

	"github.com/quickcourt/QC-BookingService/internal/domain"
)

type CentreService interface {
	ListCentres(ctx context.Context) ([]*domain.Centre, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
