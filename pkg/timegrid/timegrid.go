// Package timegrid contains the pure slot-grid arithmetic shared by the
// availability engine, the booking pipeline and the admin window checks.
// All functions operate on minutes from midnight; parsing and formatting
// of "HH:MM" values lives in pkg/types.
package timegrid

import (
	"github.com/m04kA/appointment-scheduler/pkg/types"
)

// IsAligned проверяет, что смещение кратно длительности слота.
// Вызывающий передает смещение относительно начала сетки
// (обычно startMinutes - gridStart, где сетка начинается
// в начале рабочего дня)
func IsAligned(minutes, slotDuration int) bool {
	if slotDuration <= 0 {
		return false
	}
	return minutes%slotDuration == 0
}

// GenerateSlots генерирует упорядоченный список стартов слотов в минутах:
// start <= t < end с шагом duration. Неполный последний слот отбрасывается:
// слот попадает в сетку, только если целиком помещается до end.
// Возвращает пустой список, если start >= end или duration <= 0.
func GenerateSlots(startMinutes, endMinutes, duration int) []int {
	slots := make([]int, 0)
	if duration <= 0 {
		return slots
	}

	for t := startMinutes; t+duration <= endMinutes; t += duration {
		slots = append(slots, t)
	}
	return slots
}

// GenerateSlotTimes генерирует сетку слотов как список TimeString
func GenerateSlotTimes(start, end types.TimeString, duration int) ([]types.TimeString, error) {
	startMin, err := start.Minutes()
	if err != nil {
		return nil, err
	}
	endMin, err := end.Minutes()
	if err != nil {
		return nil, err
	}

	minutes := GenerateSlots(startMin, endMin, duration)
	slots := make([]types.TimeString, 0, len(minutes))
	for _, m := range minutes {
		ts, err := types.NewTimeStringFromMinutes(m)
		if err != nil {
			return nil, err
		}
		slots = append(slots, ts)
	}
	return slots, nil
}

// Overlaps проверяет пересечение занимаемого интервала
// [aStart, aStart + aDuration*aCount) с интервалом [bStart, bEnd).
// Оба интервала полуоткрытые: соприкасающиеся границы пересечением не считаются.
// Этот предикат лежит в основе всех проверок конфликтов в сервисе:
// запись-запись, запись-окно, слот-окно.
func Overlaps(aStart, aDuration, aCount, bStart, bEnd int) bool {
	aEnd := aStart + aDuration*aCount
	return aStart < bEnd && aEnd > bStart
}
