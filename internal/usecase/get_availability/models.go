package get_availability

import (
	"github.com/m04kA/appointment-scheduler/pkg/types"
)

// Request модель запроса на получение доступности
type Request struct {
	Date string // Дата в формате "YYYY-MM-DD"
}

// Response модель ответа с сеткой слотов на дату
// Slots пуст для нерабочего дня и для выходного
type Response struct {
	Date  types.DateString
	Slots []Slot
}

// Slot модель слота сетки
// AvailableSlots принимает значения 0 (занят) или 1 (свободен):
// ресурс один, слот либо доступен целиком, либо нет
type Slot struct {
	Time           types.TimeString
	AvailableSlots int
}
