package get_availability

import "errors"

var (
	// ErrInvalidDate возвращается, когда дата вне окна бронирования или
	// попадает на закрытый день недели
	ErrInvalidDate = errors.New("get_availability: date is not open for booking")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_availability: internal error")
)
