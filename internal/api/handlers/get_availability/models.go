package get_availability

import (
	"time"

	"github.com/bettersystemsai/BSA-BookingService/internal/domain"
	getAvailability "github.com/bettersystemsai/BSA-BookingService/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Success bool   `json:"success"`
	Date    string `json:"date"`
	Slots   []Slot `json:"slots"`
}

// Slot слот каталога с признаком доступности
type Slot struct {
	Time      string `json:"time"`
	Display   string `json:"display"`
	Available bool   `json:"available"`
}

// ToUseCaseRequest создает запрос use case из path-параметра даты
func ToUseCaseRequest(dateStr string) (*getAvailability.Request, error) {
	date, err := time.ParseInLocation(domain.DateFormat, dateStr, domain.BusinessLocation)
	if err != nil {
		return nil, err
	}

	return &getAvailability.Request{Date: date}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	slots := make([]Slot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = Slot{
			Time:      slot.Time.String(),
			Display:   slot.Display,
			Available: slot.Available,
		}
	}

	return &AvailabilityResponse{
		Success: true,
		Date:    resp.Date.Format(domain.DateFormat),
		Slots:   slots,
	}
}
