package create_booking

import (
	"context"
	"time"

	"github.com/bettersystemsai/BSA-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// Create атомарно создает бронирование ("insert if absent");
	// возвращает ErrSlotTaken хранилища, если пара (дата, время) уже занята
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// Notifier интерфейс отправки подтверждения бронирования
// Вызов best-effort: его результат не влияет на судьбу бронирования
type Notifier interface {
	SendConfirmation(ctx context.Context, booking *domain.Booking) error
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
