package windows

import "errors"

var (
	// ErrWindowNotFound возвращается, когда окно недоступности не найдено
	ErrWindowNotFound = errors.New("unavailable window not found")

	// ErrWindowOverlap возвращается, когда окно пересекается с существующим
	// окном той же области действия
	ErrWindowOverlap = errors.New("unavailable window overlaps an existing window in the same scope")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
