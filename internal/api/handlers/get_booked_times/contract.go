package get_booked_times

import (
	"context"
	"time"
)

// BookingsService интерфейс read-сервиса бронирований
type BookingsService interface {
	GetBookedTimes(ctx context.Context, date time.Time) ([]string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
