package create_allocation

import "errors"

var (
	// ErrConflict возвращается, когда ячейки кандидата пересекаются с
	// существующим бронированием либо временной прогон выходит за границу
	// календаря. Для вызывающего это одно и то же: забронировать нельзя,
	// состояние не изменено.
	ErrConflict = errors.New("create_allocation: slot conflict")

	// ErrUnknownLayout возвращается при метке раскладки, недопустимой для
	// возрастной категории команды (устаревшее состояние UI)
	ErrUnknownLayout = errors.New("create_allocation: unknown layout for team bracket")

	// ErrPitchNotFound возвращается, когда поле отсутствует в каталоге
	ErrPitchNotFound = errors.New("create_allocation: pitch not found")

	// ErrSectionNotOnPitch возвращается, когда секция не существует на выбранном поле
	ErrSectionNotOnPitch = errors.New("create_allocation: section not available on pitch")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_allocation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_allocation: internal error")
)
