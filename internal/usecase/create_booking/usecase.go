package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/bettersystemsai/BSA-BookingService/internal/domain"
	bookingRepo "github.com/bettersystemsai/BSA-BookingService/internal/infra/storage/booking"
)

// UseCase use case бронирования discovery-звонка
//
// Единственное место, где важна настоящая конкурентная корректность:
// резервирование выполняется одной условной атомарной вставкой, уникальность
// пары (дата, время) гарантирует хранилище. Повтор запроса безопасен -
// повторная вставка занятого слота вернет ErrSlotUnavailable, а не дубль
type UseCase struct {
	bookingRepo  BookingRepository
	notifier     Notifier
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, notifier Notifier, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		notifier:     notifier,
		timeProvider: &BusinessTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: date=%s, time=%s, email=%s",
		req.Date.Format(domain.DateFormat), req.StartTime, req.Email)

	// 1. Валидация обязательных полей заявки
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Окно бронирования вычисляется заново от текущего момента
	now := uc.timeProvider.Now()
	window := domain.ComputeWindow(now)

	// 3. Проверяем структурную доступность даты
	if err := validateDate(req.Date, window); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 4. Проверяем, что время входит в каталог слотов
	if err := validateSlot(req); err != nil {
		uc.logger.Warn("CreateBooking: slot validation failed: %v", err)
		return nil, err
	}

	// 5. Атомарное резервирование: вставка и проверка занятости - одна
	// операция хранилища, предварительного чтения нет
	booking := &domain.Booking{
		BookingDate: domain.StartOfDay(req.Date),
		StartTime:   req.StartTime,
		Status:      domain.StatusConfirmed,
		Name:        req.Name,
		Email:       req.Email,
		Company:     req.Company,
		Interest:    req.Interest,
		Notes:       req.Notes,
	}

	created, err := uc.bookingRepo.Create(ctx, booking)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrSlotTaken) {
			uc.logger.Warn("CreateBooking: slot %s %s already taken",
				req.Date.Format(domain.DateFormat), req.StartTime)
			return nil, ErrSlotUnavailable
		}
		uc.logger.Error("CreateBooking: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", created.ID)

	// 6. Подтверждение отправляется best-effort: бронирование уже
	// зафиксировано в хранилище, сбой доставки его не откатывает
	if err := uc.notifier.SendConfirmation(ctx, created); err != nil {
		uc.logger.Error("CreateBooking: confirmation delivery failed for booking id=%d: %v",
			created.ID, err)
	}

	return &Response{
		ID:          created.ID,
		Date:        created.BookingDate,
		StartTime:   created.StartTime,
		DisplayTime: created.StartTime.Display(),
		Status:      string(created.Status),
		Name:        created.Name,
		Email:       created.Email,
		Company:     created.Company,
		Interest:    created.Interest,
		Notes:       created.Notes,
		CreatedAt:   created.CreatedAt,
	}, nil
}
