package create_centre

import (
	"context"

	"github.com/quickcourt/QC-BookingService/internal/domain"
)

type CentreService interface {
	CreateCentre(ctx context.Context, name, location string) (*domain.Centre, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
