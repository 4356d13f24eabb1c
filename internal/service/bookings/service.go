package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bettersystemsai/BSA-BookingService/internal/domain"
	bookingRepo "github.com/bettersystemsai/BSA-BookingService/internal/infra/storage/booking"
	"github.com/bettersystemsai/BSA-BookingService/internal/service/bookings/models"
)

// Service read-сторона бронирований для админ-панели CRM
// Ничего не резервирует и не меняет: создание идет через usecase create_booking
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	if id <= 0 {
		return nil, fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// GetByDate получает все бронирования на дату по возрастанию времени
func (s *Service) GetByDate(ctx context.Context, date time.Time) (*models.BookingListResponse, error) {
	s.logger.Info("GetByDate: fetching bookings for date=%s", date.Format(domain.DateFormat))

	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByDate(ctx, date)
	if err != nil {
		s.logger.Error("GetByDate: repository error for date=%s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: GetByDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByDate: fetched %d bookings for date=%s", len(bookings), date.Format(domain.DateFormat))
	return models.FromDomainBookingList(bookings), nil
}

// GetBookedTimes возвращает занятые времена начала на дату ("HH:MM", ASC)
func (s *Service) GetBookedTimes(ctx context.Context, date time.Time) ([]string, error) {
	s.logger.Info("GetBookedTimes: fetching booked times for date=%s", date.Format(domain.DateFormat))

	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	times, err := s.bookingRepo.FindBookedTimes(ctx, date)
	if err != nil {
		s.logger.Error("GetBookedTimes: repository error for date=%s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: GetBookedTimes - repository error: %v", ErrInternal, err)
	}

	result := make([]string, len(times))
	for i, t := range times {
		result[i] = t.String()
	}

	return result, nil
}
