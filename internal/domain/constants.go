package domain

import "time"

// Форматы даты и времени в API и БД
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Окно бронирования относительно "сегодня"
const (
	MinAdvanceDays = 3  // ближайшая доступная дата: сегодня + 3 дня
	MaxAdvanceDays = 60 // самая дальняя доступная дата: сегодня + 60 дней
)

// Параметры сетки слотов
// Последний стартовый слот должен оставлять полные полчаса до конца
// рабочего дня, поэтому дневной диапазон закрывается в 16:30, а не в 17:00
const (
	SlotDurationMinutes = 30

	MorningOpen    = "09:00"
	MorningClose   = "12:00"
	AfternoonOpen  = "13:00"
	AfternoonClose = "16:30"
)

// CatalogSize фиксированное количество слотов в каталоге на любой день
const CatalogSize = 13

// Лимиты полей заявки
const (
	MaxNameLength  = 200
	MaxEmailLength = 320
	MaxNotesLength = 500
)

// BusinessTimeZone единая бизнес-зона всего расписания (Аризона, без DST)
const BusinessTimeZone = "America/Phoenix"

// BusinessLocation загруженная бизнес-зона
// Phoenix не переводит часы, поэтому фиксированный offset -7 эквивалентен
var BusinessLocation = mustLoadLocation(BusinessTimeZone)

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.FixedZone("MST", -7*60*60)
	}
	return loc
}
