package allocation

import "errors"

var (
	// ErrAllocationNotFound возвращается, когда бронирование не найдено
	ErrAllocationNotFound = errors.New("allocation.repository: allocation not found")

	// ErrCellTaken возвращается при нарушении уникальности ячейки сетки
	// (две записи претендуют на одну ячейку). Страховка на уровне БД для
	// взаимного исключения; наверх отображается как конфликт бронирования.
	ErrCellTaken = errors.New("allocation.repository: grid cell already taken")

	// ErrUnknownRegime возвращается при неизвестном режиме бронирования
	ErrUnknownRegime = errors.New("allocation.repository: unknown booking regime")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("allocation.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса.
	// Означает недоступность хранилища; ретраи — забота вызывающего слоя.
	ErrExecQuery = errors.New("allocation.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("allocation.repository: failed to scan row")
)
