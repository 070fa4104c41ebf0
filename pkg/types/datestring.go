package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// DateString represents a calendar date in "YYYY-MM-DD" format. It carries no
// time-of-day and no timezone: the same string always denotes the same
// calendar day regardless of the host or database timezone. All day-of-week
// computations go through this type so the service cannot drift by a day
// near midnight boundaries.
type DateString string

const dateLayout = "2006-01-02"

var (
	// ErrInvalidDateString возвращается при некорректном формате даты
	ErrInvalidDateString = errors.New("types: invalid date string format, expected YYYY-MM-DD")
)

// NewDateString создает DateString из time.Time (отбрасывает время и зону)
func NewDateString(t time.Time) DateString {
	return DateString(t.Format(dateLayout))
}

// NewDateStringFromString парсит и валидирует строку "YYYY-MM-DD"
func NewDateStringFromString(s string) (DateString, error) {
	ds := DateString(s)
	if err := ds.Validate(); err != nil {
		return "", err
	}
	return ds, nil
}

// Validate проверяет формат и календарную корректность даты
func (d DateString) Validate() error {
	parsed, err := time.Parse(dateLayout, string(d))
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDateString, string(d))
	}
	// time.Parse нормализует некоторые некорректные даты (2025-02-30 -> 2025-03-02),
	// поэтому сверяем обратное форматирование
	if parsed.Format(dateLayout) != string(d) {
		return fmt.Errorf("%w: %q", ErrInvalidDateString, string(d))
	}
	return nil
}

// Weekday возвращает ISO день недели: 1 (понедельник) .. 7 (воскресенье).
// Дата интерпретируется как полночь UTC, что дает одинаковый результат
// на любом хосте независимо от его локальной зоны.
func (d DateString) Weekday() (int, error) {
	parsed, err := time.ParseInLocation(dateLayout, string(d), time.UTC)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDateString, string(d))
	}

	wd := int(parsed.Weekday()) // 0=Sunday..6=Saturday
	if wd == 0 {
		return 7, nil
	}
	return wd, nil
}

// Time возвращает полночь UTC для этой даты (для записи в колонку DATE)
func (d DateString) Time() (time.Time, error) {
	parsed, err := time.ParseInLocation(dateLayout, string(d), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateString, string(d))
	}
	return parsed, nil
}

// IsZero возвращает true для пустого значения
func (d DateString) IsZero() bool {
	return d == ""
}

// String реализует fmt.Stringer
func (d DateString) String() string {
	return string(d)
}

// Value реализует driver.Valuer для записи в БД
func (d DateString) Value() (driver.Value, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return string(d), nil
}

// Scan реализует sql.Scanner для чтения из БД
// Поддерживает TEXT, DATE и TIMESTAMP представления
func (d *DateString) Scan(src interface{}) error {
	var s string
	switch v := src.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	case time.Time:
		*d = NewDateString(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidDateString, src)
	}

	// Отбрасываем время, если колонка имеет тип TIMESTAMP
	if len(s) > 10 {
		s = s[:10]
	}

	ds, err := NewDateStringFromString(s)
	if err != nil {
		return err
	}
	*d = ds
	return nil
}
