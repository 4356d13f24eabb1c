package domain

import "time"

// CalendarWindow инклюзивный диапазон календарных дат, в котором разрешено
// бронирование. Вычисляется заново на каждый запрос от переданного "сейчас",
// нигде не хранится
type CalendarWindow struct {
	MinDate time.Time
	MaxDate time.Time
}

// BlackoutWeekdays дни недели, закрытые для бронирования независимо от окна
// Набор данных, а не логика: новые правила добавляются без изменения вызывающих
var BlackoutWeekdays = map[time.Weekday]bool{
	time.Sunday: true,
}

// ComputeWindow вычисляет окно бронирования от переданного момента времени
// minDate = начало сегодняшнего дня + MinAdvanceDays
// maxDate = начало сегодняшнего дня + MaxAdvanceDays
// Чистая функция: "сейчас" передается явно, чтобы граничные тесты были детерминированы
func ComputeWindow(now time.Time) CalendarWindow {
	today := StartOfDay(now)
	return CalendarWindow{
		MinDate: today.AddDate(0, 0, MinAdvanceDays),
		MaxDate: today.AddDate(0, 0, MaxAdvanceDays),
	}
}

// IsBlackoutDate проверяет, что дата попадает на закрытый день недели
func IsBlackoutDate(date time.Time) bool {
	return BlackoutWeekdays[date.Weekday()]
}

// IsEligibleDate проверяет, что дата структурно доступна для бронирования:
// лежит внутри окна (включительно с обеих сторон) и не попадает на закрытый
// день недели. Занятость конкретных слотов здесь не учитывается
func IsEligibleDate(date time.Time, window CalendarWindow) bool {
	day := StartOfDay(date)

	if day.Before(window.MinDate) || day.After(window.MaxDate) {
		return false
	}

	return !IsBlackoutDate(day)
}

// StartOfDay обнуляет время, оставляя только календарную дату
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay проверяет, что две даты относятся к одному и тому же дню
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
