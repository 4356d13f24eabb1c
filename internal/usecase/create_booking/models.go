package create_booking

import (
	"time"

	"github.com/bettersystemsai/BSA-BookingService/pkg/types"
)

// Request модель запроса на бронирование discovery-звонка
type Request struct {
	Date      time.Time        // дата звонка (без времени)
	StartTime types.TimeString // время начала слота, "HH:MM"

	Name     string  // обязательное
	Email    string  // обязательное
	Company  *string // опционально
	Interest *string // опционально
	Notes    *string // опционально
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          int64
	Date        time.Time
	StartTime   types.TimeString
	DisplayTime string // "h:mm AM/PM" для подтверждения пользователю
	Status      string

	Name     string
	Email    string
	Company  *string
	Interest *string
	Notes    *string

	CreatedAt time.Time
}
