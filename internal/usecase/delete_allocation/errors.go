package delete_allocation

import "errors"

var (
	// ErrNotFound возвращается, когда в указанной ячейке нет бронирования
	ErrNotFound = errors.New("delete_allocation: no allocation at cell")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("delete_allocation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("delete_allocation: internal error")
)
