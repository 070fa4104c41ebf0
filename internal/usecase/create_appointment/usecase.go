package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/appointment-scheduler/internal/domain"
	appointmentRepo "github.com/m04kA/appointment-scheduler/internal/infra/storage/appointment"
	dayoffRepo "github.com/m04kA/appointment-scheduler/internal/infra/storage/dayoff"
	"github.com/m04kA/appointment-scheduler/pkg/txmanager"
)

// UseCase use case для создания записи
//
// Валидация выполняется упорядоченным конвейером: первое нарушенное
// правило прерывает обработку со своим видом ошибки. Проверки по данным
// БД и вставка выполняются в сериализуемой транзакции: два конкурентных
// запроса на пересекающиеся интервалы не могут пройти проверку конфликтов
// одновременно.
type UseCase struct {
	configProvider  ConfigProvider
	dayOffRepo      DayOffRepository
	windowRepo      WindowRepository
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	configProvider ConfigProvider,
	dayOffRepo DayOffRepository,
	windowRepo WindowRepository,
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		configProvider:  configProvider,
		dayOffRepo:      dayOffRepo,
		windowRepo:      windowRepo,
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: date=%s, time=%s, slots=%d", req.Date, req.StartTime, req.SlotCount)

	// Разбор форматов и опциональных полей
	parsed, err := parseRequest(req)
	if err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// Получаем конфигурацию расписания
	config, err := uc.configProvider.GetDomain(ctx)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to get config: %v", err)
		return nil, fmt.Errorf("%w: failed to get config: %v", ErrInternal, err)
	}

	// 1. Количество слотов
	if err := validateSlotCount(req.SlotCount, config.MaxSlotsPerAppointment); err != nil {
		uc.logger.Warn("CreateAppointment: %v", err)
		return nil, err
	}

	startMinutes, err := parsed.startTime.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: startTime: %v", ErrInvalidInput, err)
	}
	gridStart, err := config.OperationalStartTime.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: invalid operational start time: %v", ErrInternal, err)
	}
	gridEnd, err := config.OperationalEndTime.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: invalid operational end time: %v", ErrInternal, err)
	}
	endMinutes := startMinutes + req.SlotCount*config.SlotDurationMinutes

	// 2. Выравнивание по сетке
	if err := validateAlignment(startMinutes, gridStart, config.SlotDurationMinutes); err != nil {
		uc.logger.Warn("CreateAppointment: %v", err)
		return nil, err
	}

	// 3. Рабочий день недели
	if err := validateOperationalDay(config, parsed.weekday); err != nil {
		uc.logger.Warn("CreateAppointment: %v", err)
		return nil, err
	}

	// 4. Интервал внутри рабочих часов
	if err := validateWithinHours(startMinutes, endMinutes, gridStart, gridEnd); err != nil {
		uc.logger.Warn("CreateAppointment: %v", err)
		return nil, err
	}

	var result *domain.Appointment

	// 5-8. Проверки по данным БД и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5. Выходной
		_, err := uc.dayOffRepo.GetByDate(txCtx, parsed.date)
		if err == nil {
			uc.logger.Warn("CreateAppointment: %s is a day off", parsed.date)
			return ErrDateIsDayOff
		}
		if !errors.Is(err, dayoffRepo.ErrDayOffNotFound) {
			uc.logger.Error("CreateAppointment: failed to check day off: %v", err)
			return fmt.Errorf("%w: failed to check day off: %w", ErrInternal, err)
		}

		// 6. Окна недоступности
		windows, err := uc.windowRepo.GetForDate(txCtx, parsed.date, parsed.weekday)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get windows: %v", err)
			return fmt.Errorf("%w: failed to get windows: %w", ErrInternal, err)
		}
		if err := checkWindowConflicts(startMinutes, config.SlotDurationMinutes, req.SlotCount, windows); err != nil {
			uc.logger.Warn("CreateAppointment: %v", err)
			return err
		}

		// 7. Существующие записи (чтение с блокировкой строк)
		appointments, err := uc.appointmentRepo.GetByDate(txCtx, parsed.date)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %w", ErrInternal, err)
		}
		if err := checkAppointmentConflicts(startMinutes, config.SlotDurationMinutes, req.SlotCount, appointments); err != nil {
			uc.logger.Warn("CreateAppointment: %v", err)
			return err
		}

		// 8. Сохраняем запись с фиксацией текущей длительности слота
		appointment := &domain.Appointment{
			Date:                parsed.date,
			StartTime:           parsed.startTime,
			SlotCount:           req.SlotCount,
			SlotDurationMinutes: config.SlotDurationMinutes,
			CustomerName:        req.CustomerName,
			CustomerEmail:       req.CustomerEmail,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appointment)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateAppointment: slot %s %s already taken", parsed.date, parsed.startTime)
				return ErrSlotConflict
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		// Конфликт сериализации - это гонка двух пересекающихся запросов:
		// для клиента это занятый интервал, а не внутренняя ошибка
		if errors.Is(err, txmanager.ErrSerializationFailure) || txmanager.IsSerializationFailure(err) {
			uc.logger.Warn("CreateAppointment: serialization conflict for %s %s", parsed.date, parsed.startTime)
			return nil, ErrSlotConflict
		}
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%s", result.ID)

	endTime, err := result.StartTime.AddMinutes(result.SlotCount * result.SlotDurationMinutes)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to compute end time: %v", ErrInternal, err)
	}

	return &Response{
		ID:                  result.ID,
		Date:                result.Date,
		StartTime:           result.StartTime,
		EndTime:             endTime,
		SlotCount:           result.SlotCount,
		SlotDurationMinutes: result.SlotDurationMinutes,
		CustomerName:        result.CustomerName,
		CustomerEmail:       result.CustomerEmail,
		CreatedAt:           result.CreatedAt,
	}, nil
}
