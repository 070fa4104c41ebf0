package create_appointment

import "errors"

var (
	// ErrInvalidSlotCount возвращается, когда количество слотов вне допустимого диапазона
	ErrInvalidSlotCount = errors.New("create_appointment: invalid slot count")

	// ErrMisalignedTime возвращается, когда время не попадает на границу сетки слотов
	ErrMisalignedTime = errors.New("create_appointment: time is not aligned to the slot grid")

	// ErrNonOperationalDay возвращается, когда день недели нерабочий
	ErrNonOperationalDay = errors.New("create_appointment: date is not an operational day")

	// ErrOutsideOperationalHours возвращается, когда занимаемый интервал выходит за рабочие часы
	ErrOutsideOperationalHours = errors.New("create_appointment: interval is outside operational hours")

	// ErrDateIsDayOff возвращается, когда на дату назначен выходной
	ErrDateIsDayOff = errors.New("create_appointment: date is a day off")

	// ErrWindowConflict возвращается, когда интервал пересекается с окном недоступности
	ErrWindowConflict = errors.New("create_appointment: interval overlaps an unavailable window")

	// ErrSlotConflict возвращается, когда интервал пересекается с существующей записью
	ErrSlotConflict = errors.New("create_appointment: interval overlaps an existing appointment")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
