package allocations

import "errors"

var (
	// ErrPitchNotFound возвращается, когда поле отсутствует в каталоге
	ErrPitchNotFound = errors.New("allocations.service: pitch not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("allocations.service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("allocations.service: internal error")
)
