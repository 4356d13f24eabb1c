package create_booking

import "errors"

var (
	// ErrMissingRequiredField возвращается, когда отсутствует обязательное
	// поле заявки (date, time, name, email)
	ErrMissingRequiredField = errors.New("create_booking: missing required field")

	// ErrInvalidDate возвращается, когда дата вне окна бронирования или
	// попадает на закрытый день недели
	ErrInvalidDate = errors.New("create_booking: date is not open for booking")

	// ErrInvalidSlot возвращается, когда время не входит в фиксированный
	// каталог слотов
	ErrInvalidSlot = errors.New("create_booking: time is not a bookable slot")

	// ErrSlotUnavailable возвращается, когда пара (дата, время) уже занята
	// другим бронированием. Ожидаемый исход гонки, а не сбой: клиенту
	// следует перечитать доступность и выбрать другой слот
	ErrSlotUnavailable = errors.New("create_booking: slot is no longer available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
