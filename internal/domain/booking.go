package domain

import (
	"time"

	"github.com/bettersystemsai/BSA-BookingService/pkg/types"
)

// BookingStatus статус бронирования
// Ядро не моделирует перенос и отмену: бронирование создается сразу
// подтвержденным и больше не меняется
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
)

// Booking бронирование discovery-звонка: одна пара (дата, слот) на одного
// заявителя. Инвариант системы: на дату не может существовать двух
// подтвержденных бронирований с одинаковым временем начала
type Booking struct {
	ID          int64
	BookingDate time.Time        // календарная дата звонка (без времени)
	StartTime   types.TimeString // время начала слота, "HH:MM"
	Status      BookingStatus

	// Данные заявителя с формы "book a discovery call"
	Name     string
	Email    string
	Company  *string
	Interest *string
	Notes    *string

	CreatedAt time.Time
}

// IsConfirmed возвращает true для подтвержденного бронирования
func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}

// SlotKey возвращает ключ уникальности бронирования "YYYY-MM-DD HH:MM"
func (b *Booking) SlotKey() string {
	return b.BookingDate.Format(DateFormat) + " " + b.StartTime.String()
}
