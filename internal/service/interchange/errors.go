package interchange

import "errors"

var (
	// ErrInvalidPayload возвращается при нечитаемом или противоречивом файле импорта
	ErrInvalidPayload = errors.New("interchange.service: invalid import payload")

	// ErrConflict возвращается, когда импортируемое бронирование
	// пересекается с существующей сеткой. Импорт атомарен: при конфликте
	// не применяется ничего.
	ErrConflict = errors.New("interchange.service: import conflicts with existing allocations")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("interchange.service: internal error")
)
