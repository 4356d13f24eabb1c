package models

import (
	"time"

	"github.com/bettersystemsai/BSA-BookingService/internal/domain"
)

// BookingResponse модель бронирования для админ-панели CRM
type BookingResponse struct {
	ID          int64  `json:"id"`
	Date        string `json:"date"` // "YYYY-MM-DD"
	StartTime   string `json:"time"`
	DisplayTime string `json:"displayTime"`
	Status      string `json:"status"`

	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Company  *string `json:"company,omitempty"`
	Interest *string `json:"interest,omitempty"`
	Notes    *string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
	Total    int                `json:"total"`
}

// FromDomainBooking конвертирует domain.Booking в response-модель
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:          b.ID,
		Date:        b.BookingDate.Format(domain.DateFormat),
		StartTime:   b.StartTime.String(),
		DisplayTime: b.StartTime.Display(),
		Status:      string(b.Status),
		Name:        b.Name,
		Email:       b.Email,
		Company:     b.Company,
		Interest:    b.Interest,
		Notes:       b.Notes,
		CreatedAt:   b.CreatedAt,
	}
}

// FromDomainBookingList конвертирует список domain.Booking в response-модель
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]*BookingResponse, len(bookings))
	for i, b := range bookings {
		result[i] = FromDomainBooking(b)
	}
	return &BookingListResponse{
		Bookings: result,
		Total:    len(result),
	}
}
