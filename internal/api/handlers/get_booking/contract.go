package get_booking

import (
	"context"

	"github.com/bettersystemsai/BSA-BookingService/internal/service/bookings/models"
)

// BookingsService интерфейс read-сервиса бронирований
type BookingsService interface {
	GetByID(ctx context.Context, id int64) (*models.BookingResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
