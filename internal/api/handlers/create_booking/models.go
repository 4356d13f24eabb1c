package create_booking

import (
	"time"

	"github.com/bettersystemsai/BSA-BookingService/internal/domain"
	createBooking "github.com/bettersystemsai/BSA-BookingService/internal/usecase/create_booking"
	"github.com/bettersystemsai/BSA-BookingService/pkg/types"
)

// BookRequest HTTP request model POST /api/book
type BookRequest struct {
	Date     string  `json:"date"` // "2025-01-06"
	Time     string  `json:"time"` // "13:30"
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Company  *string `json:"company,omitempty"`
	Interest *string `json:"interest,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

// BookResponse HTTP response model
type BookResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Booking *Booking `json:"booking,omitempty"`
}

// Booking созданное бронирование в HTTP-ответе
type Booking struct {
	ID          int64   `json:"id"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	DisplayTime string  `json:"displayTime"`
	Status      string  `json:"status"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Company     *string `json:"company,omitempty"`
	Interest    *string `json:"interest,omitempty"`
	Notes       *string `json:"notes,omitempty"`
	CreatedAt   string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Пустые date/time пропускаются без ошибки парсинга: отсутствие обязательных
// полей должно диагностироваться usecase-ом как MissingRequiredField
func (r *BookRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	req := &createBooking.Request{
		Name:     r.Name,
		Email:    r.Email,
		Company:  r.Company,
		Interest: r.Interest,
		Notes:    r.Notes,
	}

	if r.Date != "" {
		date, err := time.ParseInLocation(domain.DateFormat, r.Date, domain.BusinessLocation)
		if err != nil {
			return nil, err
		}
		req.Date = date
	}

	if r.Time != "" {
		startTime, err := types.NewTimeStringFromString(r.Time)
		if err != nil {
			return nil, err
		}
		req.StartTime = startTime
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookResponse {
	return &BookResponse{
		Success: true,
		Message: msgBookingConfirmed,
		Booking: &Booking{
			ID:          resp.ID,
			Date:        resp.Date.Format(domain.DateFormat),
			Time:        resp.StartTime.String(),
			DisplayTime: resp.DisplayTime,
			Status:      resp.Status,
			Name:        resp.Name,
			Email:       resp.Email,
			Company:     resp.Company,
			Interest:    resp.Interest,
			Notes:       resp.Notes,
			CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
		},
	}
}
