package bookings

import (
	"context"
	"time"

	"github.com/quickcourt/QC-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetDetailedByID(ctx context.Context, id int64) (*domain.BookingDetails, error)
	GetDetailedByUserID(ctx context.Context, userID int64) ([]*domain.BookingDetails, error)
	GetAllDetailed(ctx context.Context, filter domain.BookingsFilter) ([]*domain.BookingDetails, error)
	Delete(ctx context.Context, id int64) error
}

// TimeProvider источник текущего времени
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реализация TimeProvider на основе системных часов
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
