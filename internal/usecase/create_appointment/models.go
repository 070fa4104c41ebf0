package create_appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/appointment-scheduler/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	Date          string  // Дата в формате "YYYY-MM-DD"
	StartTime     string  // Время начала в формате "HH:MM"
	SlotCount     int     // Количество последовательных слотов
	CustomerName  *string // Имя клиента (опционально)
	CustomerEmail *string // Email клиента (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID                  uuid.UUID        // ID созданной записи
	Date                types.DateString // Дата записи
	StartTime           types.TimeString // Время начала
	EndTime             types.TimeString // Время окончания (полуоткрытая граница)
	SlotCount           int              // Количество слотов
	SlotDurationMinutes int              // Длительность слота на момент создания
	CustomerName        *string          // Имя клиента
	CustomerEmail       *string          // Email клиента
	CreatedAt           time.Time        // Время создания
}
