package create_court

import (
	"context"

	"github.com/quickcourt/QC-BookingService/internal/domain"
)

type CentreService interface {
	CreateCourt(ctx context.Context, sportID int64, name string) (*domain.Court, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
