package get_availability

import (
	"time"

	"github.com/bettersystemsai/BSA-BookingService/pkg/types"
)

// Request модель запроса доступности слотов на дату
type Request struct {
	Date time.Time // дата, на которую запрашиваются слоты (без времени)
}

// Response модель ответа: все слоты каталога с признаком доступности
type Response struct {
	Date  time.Time
	Slots []Slot // всегда полный каталог в хронологическом порядке
}

// Slot слот каталога с признаком доступности на запрошенную дату
type Slot struct {
	Time      types.TimeString // время начала, "HH:MM"
	Display   string           // метка для отображения, "h:mm AM/PM"
	Available bool
}
