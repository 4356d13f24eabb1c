package get_availability

import (
	"context"
	"time"

	"github.com/bettersystemsai/BSA-BookingService/internal/domain"
	"github.com/bettersystemsai/BSA-BookingService/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// FindBookedTimes возвращает занятые времена начала на дату (read-only)
	FindBookedTimes(ctx context.Context, date time.Time) ([]types.TimeString, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// BusinessTimeProvider провайдер времени в бизнес-зоне расписания
type BusinessTimeProvider struct{}

// Now возвращает текущее время в бизнес-зоне
func (p *BusinessTimeProvider) Now() time.Time {
	return time.Now().In(domain.BusinessLocation)
}
