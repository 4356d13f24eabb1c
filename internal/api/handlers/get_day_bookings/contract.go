package get_day_bookings

import (
	"context"
	"time"

	"github.com/bettersystemsai/BSA-BookingService/internal/service/bookings/models"
)

// BookingsService интерфейс read-сервиса бронирований
type BookingsService interface {
	GetByDate(ctx context.Context, date time.Time) (*models.BookingListResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
