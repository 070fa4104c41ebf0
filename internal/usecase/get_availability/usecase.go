package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/appointment-scheduler/internal/domain"
	dayoffRepo "github.com/m04kA/appointment-scheduler/internal/infra/storage/dayoff"
	"github.com/m04kA/appointment-scheduler/pkg/timegrid"
	"github.com/m04kA/appointment-scheduler/pkg/types"
)

// UseCase use case для получения сетки доступности на дату
type UseCase struct {
	configProvider  ConfigProvider
	dayOffRepo      DayOffRepository
	windowRepo      WindowRepository
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	configProvider ConfigProvider,
	dayOffRepo DayOffRepository,
	windowRepo WindowRepository,
	appointmentRepo AppointmentRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		configProvider:  configProvider,
		dayOffRepo:      dayOffRepo,
		windowRepo:      windowRepo,
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// Execute выполняет use case получения доступности
//
// Для нерабочего дня и для выходного возвращается пустая сетка.
// Слот свободен, только если не пересекается ни с одним окном
// недоступности и ни с одной записью на эту дату.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация даты
	date, err := types.NewDateStringFromString(req.Date)
	if err != nil {
		uc.logger.Warn("GetAvailability: invalid date %q: %v", req.Date, err)
		return nil, fmt.Errorf("%w: date: %v", ErrInvalidInput, err)
	}

	uc.logger.Info("GetAvailability: date=%s", date)

	// 2. Получаем конфигурацию расписания
	config, err := uc.configProvider.GetDomain(ctx)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get config: %v", err)
		return nil, fmt.Errorf("%w: failed to get config: %v", ErrInternal, err)
	}

	// 3. Нерабочий день недели - пустая сетка
	weekday, err := date.Weekday()
	if err != nil {
		return nil, fmt.Errorf("%w: date: %v", ErrInvalidInput, err)
	}
	if !config.IsOperationalDay(weekday) {
		uc.logger.Info("GetAvailability: %s is not an operational day (weekday=%d)", date, weekday)
		return &Response{Date: date, Slots: []Slot{}}, nil
	}

	// 4. Выходной - пустая сетка
	_, err = uc.dayOffRepo.GetByDate(ctx, date)
	if err == nil {
		uc.logger.Info("GetAvailability: %s is a day off", date)
		return &Response{Date: date, Slots: []Slot{}}, nil
	}
	if !errors.Is(err, dayoffRepo.ErrDayOffNotFound) {
		uc.logger.Error("GetAvailability: failed to check day off: %v", err)
		return nil, fmt.Errorf("%w: failed to check day off: %v", ErrInternal, err)
	}

	// 5. Генерируем сетку слотов в рабочих часах
	gridStart, err := config.OperationalStartTime.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: invalid operational start time: %v", ErrInternal, err)
	}
	gridEnd, err := config.OperationalEndTime.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: invalid operational end time: %v", ErrInternal, err)
	}
	grid := timegrid.GenerateSlots(gridStart, gridEnd, config.SlotDurationMinutes)

	// 6. Получаем окна недоступности и записи на дату - по одному запросу
	windows, err := uc.windowRepo.GetForDate(ctx, date, weekday)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get windows: %v", err)
		return nil, fmt.Errorf("%w: failed to get windows: %v", ErrInternal, err)
	}

	appointments, err := uc.appointmentRepo.GetByDate(ctx, date)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 7. Вычисляем доступность каждого слота
	slots, err := buildSlots(grid, config.SlotDurationMinutes, windows, appointments)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to build slots: %v", err)
		return nil, fmt.Errorf("%w: failed to build slots: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailability: generated %d slots for date=%s", len(slots), date)

	return &Response{Date: date, Slots: slots}, nil
}

// buildSlots размечает сетку: слот свободен, если не пересекается
// ни с одним окном и ни с одной записью
func buildSlots(
	grid []int,
	slotDuration int,
	windows []*domain.UnavailableWindow,
	appointments []*domain.Appointment,
) ([]Slot, error) {
	type interval struct {
		start int
		end   int
	}

	occupied := make([]interval, 0, len(windows)+len(appointments))

	for _, w := range windows {
		start, err := w.StartMinutes()
		if err != nil {
			return nil, fmt.Errorf("stored window %s: %v", w.ID, err)
		}
		end, err := w.EndMinutes()
		if err != nil {
			return nil, fmt.Errorf("stored window %s: %v", w.ID, err)
		}
		occupied = append(occupied, interval{start: start, end: end})
	}

	// Занимаемый интервал записи считается по сохраненной в ней длительности
	// слота, а не по текущей конфигурации
	for _, a := range appointments {
		start, err := a.StartMinutes()
		if err != nil {
			return nil, fmt.Errorf("stored appointment %s: %v", a.ID, err)
		}
		end, err := a.EndMinutes()
		if err != nil {
			return nil, fmt.Errorf("stored appointment %s: %v", a.ID, err)
		}
		occupied = append(occupied, interval{start: start, end: end})
	}

	slots := make([]Slot, 0, len(grid))
	for _, slotStart := range grid {
		available := 1
		for _, iv := range occupied {
			if timegrid.Overlaps(slotStart, slotDuration, 1, iv.start, iv.end) {
				available = 0
				break
			}
		}

		slotTime, err := types.NewTimeStringFromMinutes(slotStart)
		if err != nil {
			return nil, fmt.Errorf("slot at %d minutes: %v", slotStart, err)
		}

		slots = append(slots, Slot{Time: slotTime, AvailableSlots: available})
	}

	return slots, nil
}
