package grid

import "errors"

var (
	// ErrConflict возвращается, когда хотя бы одна ячейка кандидата уже занята
	ErrConflict = errors.New("grid: candidate cells conflict with an existing allocation")

	// ErrNotFound возвращается, когда по ключу ячейки нет бронирования
	ErrNotFound = errors.New("grid: no allocation at cell")

	// ErrCorruptSnapshot возвращается при регидрации, если два документа
	// претендуют на одну и ту же ячейку (нарушение взаимного исключения в хранилище)
	ErrCorruptSnapshot = errors.New("grid: two allocations occupy the same cell")

	// ErrInvalidRecordSet возвращается конструктором набора записей при некорректных параметрах
	ErrInvalidRecordSet = errors.New("grid: invalid allocation record set")
)
