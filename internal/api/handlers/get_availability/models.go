package get_availability

import (
	getAvailability "github.com/m04kA/appointment-scheduler/internal/usecase/get_availability"
)

// SlotResponse HTTP модель слота сетки
type SlotResponse struct {
	Date           string `json:"date"`
	Time           string `json:"time"`
	AvailableSlots int    `json:"availableSlots"`
}

// AvailabilityResponse HTTP модель ответа с сеткой доступности
type AvailabilityResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			Date:           resp.Date.String(),
			Time:           s.Time.String(),
			AvailableSlots: s.AvailableSlots,
		})
	}

	return &AvailabilityResponse{
		Date:  resp.Date.String(),
		Slots: slots,
	}
}
