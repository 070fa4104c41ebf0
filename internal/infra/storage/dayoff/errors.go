package dayoff

import "errors"

var (
	// ErrDayOffNotFound возвращается, когда выходной не найден
	ErrDayOffNotFound = errors.New("dayoff.repository: day off not found")

	// ErrDuplicateDate возвращается при попытке создать второй выходной на ту же дату
	ErrDuplicateDate = errors.New("dayoff.repository: day off already exists for this date")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("dayoff.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("dayoff.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("dayoff.repository: failed to scan row")
)
