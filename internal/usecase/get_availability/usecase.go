package get_availability

import (
	"context"
	"fmt"

	"github.com/bettersystemsai/BSA-BookingService/internal/domain"
	"github.com/bettersystemsai/BSA-BookingService/pkg/types"
)

// UseCase use case получения доступности слотов на дату
//
// Операция только читает: ничего не блокирует и не резервирует. Результат -
// снимок занятости на момент чтения; гонку с конкурентными бронированиями
// разрешает create_booking на уровне хранилища, а не этот usecase
type UseCase struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		timeProvider: &BusinessTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступности слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: date=%s", req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Окно бронирования вычисляется заново от текущего момента
	now := uc.timeProvider.Now()
	window := domain.ComputeWindow(now)

	// 3. Проверяем структурную доступность даты
	if err := validateDate(req.Date, window); err != nil {
		uc.logger.Warn("GetAvailability: date validation failed: %v", err)
		return nil, err
	}

	// 4. Читаем занятые времена из хранилища
	bookedTimes, err := uc.bookingRepo.FindBookedTimes(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to fetch booked times: %v", err)
		return nil, fmt.Errorf("%w: failed to fetch booked times: %v", ErrInternal, err)
	}

	booked := make(map[types.TimeString]bool, len(bookedTimes))
	for _, t := range bookedTimes {
		booked[t] = true
	}

	// 5. Размечаем фиксированный каталог, порядок каталога сохраняется
	catalog := domain.AllSlots()
	slots := make([]Slot, len(catalog))
	for i, descriptor := range catalog {
		slots[i] = Slot{
			Time:      descriptor.Time,
			Display:   descriptor.Display,
			Available: !booked[descriptor.Time],
		}
	}

	uc.logger.Info("GetAvailability: date=%s, booked=%d of %d slots",
		req.Date.Format(domain.DateFormat), len(bookedTimes), len(slots))

	return &Response{
		Date:  req.Date,
		Slots: slots,
	}, nil
}
