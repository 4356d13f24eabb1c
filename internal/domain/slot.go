package domain

import (
	"github.com/bettersystemsai/BSA-BookingService/pkg/types"
)

// SlotDescriptor один получасовой слот каталога
type SlotDescriptor struct {
	Time    types.TimeString // время начала, "HH:MM" (24 часа)
	Display string           // метка для отображения, "h:mm AM/PM"
}

// Каталог генерируется один раз на старте процесса: он не зависит от даты,
// дата влияет только на занятость слотов
var (
	catalog      []SlotDescriptor
	catalogTimes map[types.TimeString]bool
)

func init() {
	catalog = buildCatalog()

	catalogTimes = make(map[types.TimeString]bool, len(catalog))
	for _, slot := range catalog {
		catalogTimes[slot.Time] = true
	}
}

// AllSlots возвращает канонический упорядоченный список слотов дня
// Всегда одни и те же 13 слотов: 09:00-11:30 и 13:00-16:00 с шагом полчаса
// Возвращается копия, каталог неизменяем
func AllSlots() []SlotDescriptor {
	slots := make([]SlotDescriptor, len(catalog))
	copy(slots, catalog)
	return slots
}

// IsCatalogTime проверяет, что время входит в фиксированный каталог слотов
func IsCatalogTime(t types.TimeString) bool {
	return catalogTimes[t]
}

func buildCatalog() []SlotDescriptor {
	slots := make([]SlotDescriptor, 0, CatalogSize)
	slots = append(slots, generateRange(MorningOpen, MorningClose)...)
	slots = append(slots, generateRange(AfternoonOpen, AfternoonClose)...)
	return slots
}

// generateRange генерирует слоты от open с фиксированным шагом, пока конец
// слота не выходит за close
func generateRange(open, close string) []SlotDescriptor {
	openTime := types.TimeString(open)
	closeTime := types.TimeString(close)

	slots := make([]SlotDescriptor, 0)
	current := openTime

	for current.IsBefore(closeTime) {
		slotEnd, err := current.AddMinutes(SlotDurationMinutes)
		if err != nil {
			break
		}
		if slotEnd.IsAfter(closeTime) {
			break
		}

		slots = append(slots, SlotDescriptor{
			Time:    current,
			Display: current.Display(),
		})

		current = slotEnd
	}

	return slots
}
