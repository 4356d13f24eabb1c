package get_availability

import (
	"fmt"
	"time"

	"github.com/bettersystemsai/BSA-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}

// validateDate проверяет, что дата структурно доступна для бронирования
// Возвращает ErrInvalidDate с пояснением причины для пользователя
func validateDate(date time.Time, window domain.CalendarWindow) error {
	if domain.IsEligibleDate(date, window) {
		return nil
	}

	if domain.IsBlackoutDate(date) {
		return fmt.Errorf("%w: %s falls on a Sunday", ErrInvalidDate, date.Format(domain.DateFormat))
	}

	return fmt.Errorf("%w: bookings are open from %s through %s", ErrInvalidDate,
		window.MinDate.Format(domain.DateFormat), window.MaxDate.Format(domain.DateFormat))
}
