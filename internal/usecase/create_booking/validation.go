package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/bettersystemsai/BSA-BookingService/internal/domain"
)

// validateRequest валидирует заявку: обязательные поля и лимиты длины
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date", ErrMissingRequiredField)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: time", ErrMissingRequiredField)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}

	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name", ErrMissingRequiredField)
	}

	if strings.TrimSpace(req.Email) == "" {
		return fmt.Errorf("%w: email", ErrMissingRequiredField)
	}

	if len(req.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	if len(req.Email) > domain.MaxEmailLength || !strings.Contains(req.Email, "@") {
		return fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateDate проверяет, что дата структурно доступна для бронирования
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

// validateSlot проверяет, что время входит в фиксированный каталог слотов
func validateSlot(req *Request) error {
	if !domain.IsCatalogTime(req.StartTime) {
		return fmt.Errorf("%w: %s", ErrInvalidSlot, req.StartTime)
	}
	return nil
}
