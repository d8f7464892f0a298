package get_utilization

import "errors"

var (
	// ErrInvalidInput возвращается при некорректном отчетном периоде
	ErrInvalidInput = errors.New("get_utilization: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_utilization: internal error")
)
