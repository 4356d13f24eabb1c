package mailservice

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("mailservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе почтового API
	ErrInvalidResponse = errors.New("mailservice client: invalid response")

	// ErrDeliveryFailed возвращается, когда письмо не принято к доставке
	// Вызывающая сторона обязана трактовать это как best-effort сбой:
	// бронирование остается в силе
	ErrDeliveryFailed = errors.New("mailservice client: delivery failed")
)
