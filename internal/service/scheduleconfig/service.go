package scheduleconfig

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/appointment-scheduler/internal/domain"
	configRepo "github.com/m04kA/appointment-scheduler/internal/infra/storage/scheduleconfig"
	"github.com/m04kA/appointment-scheduler/internal/service/scheduleconfig/models"
	"github.com/m04kA/appointment-scheduler/pkg/types"
)

// Service сервис для работы с конфигурацией расписания
// Конфигурация хранится единственной строкой и создается лениво
// из значений по умолчанию при первом обращении
type Service struct {
	configRepo ConfigRepository
	defaults   domain.ScheduleConfig
	logger     Logger
}

// NewService создает новый экземпляр сервиса конфигурации
func NewService(configRepo ConfigRepository, defaults domain.ScheduleConfig, logger Logger) *Service {
	return &Service{
		configRepo: configRepo,
		defaults:   defaults,
		logger:     logger,
	}
}

// Get получает текущую конфигурацию расписания
// Если конфигурация еще не создана, создает её из значений по умолчанию
func (s *Service) Get(ctx context.Context) (*models.ConfigResponse, error) {
	config, err := s.getOrCreate(ctx)
	if err != nil {
		return nil, err
	}

	return models.FromDomainConfig(config), nil
}

// GetDomain получает текущую конфигурацию как domain модель
// Используется usecase-слоем (доступность, создание записи)
func (s *Service) GetDomain(ctx context.Context) (*domain.ScheduleConfig, error) {
	return s.getOrCreate(ctx)
}

// Update обновляет конфигурацию расписания
// Поддерживает частичное обновление - обновляются только указанные поля
func (s *Service) Update(ctx context.Context, req *models.UpdateConfigRequest) (*models.ConfigResponse, error) {
	s.logger.Info("Update: updating schedule config")

	// 1. Получаем (или лениво создаем) текущую конфигурацию
	config, err := s.getOrCreate(ctx)
	if err != nil {
		return nil, err
	}

	// 2. Применяем обновления к копии
	updated := *config
	if err := applyUpdate(&updated, req); err != nil {
		s.logger.Warn("Update: invalid request: %v", err)
		return nil, err
	}

	// 3. Валидируем объединенный результат
	if err := validateConfig(&updated); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	// 4. Сохраняем
	saved, err := s.configRepo.Update(ctx, config.ID, &updated)
	if err != nil {
		s.logger.Error("Update: repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated schedule config id=%d", saved.ID)
	return models.FromDomainConfig(saved), nil
}

func (s *Service) getOrCreate(ctx context.Context) (*domain.ScheduleConfig, error) {
	config, err := s.configRepo.Get(ctx)
	if err == nil {
		return config, nil
	}
	if !errors.Is(err, configRepo.ErrConfigNotFound) {
		s.logger.Error("getOrCreate: repository error: %v", err)
		return nil, fmt.Errorf("%w: getOrCreate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("getOrCreate: no schedule config found, creating from defaults")

	seed := s.defaults
	created, err := s.configRepo.Create(ctx, &seed)
	if err != nil {
		s.logger.Error("getOrCreate: failed to create default config: %v", err)
		return nil, fmt.Errorf("%w: getOrCreate - failed to create default config: %v", ErrInternal, err)
	}

	return created, nil
}

// applyUpdate применяет непустые поля запроса к конфигурации
func applyUpdate(config *domain.ScheduleConfig, req *models.UpdateConfigRequest) error {
	if req.SlotDurationMinutes != nil {
		config.SlotDurationMinutes = *req.SlotDurationMinutes
	}
	if req.MaxSlotsPerAppointment != nil {
		config.MaxSlotsPerAppointment = *req.MaxSlotsPerAppointment
	}
	if req.OperationalDays != nil {
		config.OperationalDays = *req.OperationalDays
	}
	if req.OperationalStartTime != nil {
		startTime, err := types.NewTimeStringFromString(*req.OperationalStartTime)
		if err != nil {
			return fmt.Errorf("%w: operationalStartTime: %v", ErrInvalidConfig, err)
		}
		config.OperationalStartTime = startTime
	}
	if req.OperationalEndTime != nil {
		endTime, err := types.NewTimeStringFromString(*req.OperationalEndTime)
		if err != nil {
			return fmt.Errorf("%w: operationalEndTime: %v", ErrInvalidConfig, err)
		}
		config.OperationalEndTime = endTime
	}
	return nil
}

// validateConfig валидирует параметры конфигурации расписания
func validateConfig(config *domain.ScheduleConfig) error {
	if config.SlotDurationMinutes < domain.MinSlotDurationMinutes ||
		config.SlotDurationMinutes > domain.MaxSlotDurationMinutes {
		return fmt.Errorf("%w: slotDurationMinutes must be between %d and %d",
			ErrInvalidConfig, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}

	if config.MaxSlotsPerAppointment < domain.MinSlotsPerAppointment ||
		config.MaxSlotsPerAppointment > domain.MaxSlotsPerAppointmentCap {
		return fmt.Errorf("%w: maxSlotsPerAppointment must be between %d and %d",
			ErrInvalidConfig, domain.MinSlotsPerAppointment, domain.MaxSlotsPerAppointmentCap)
	}

	if len(config.OperationalDays) == 0 {
		return fmt.Errorf("%w: operationalDays must not be empty", ErrInvalidConfig)
	}
	seen := make(map[int]struct{}, len(config.OperationalDays))
	for _, day := range config.OperationalDays {
		if day < domain.MinWeekday || day > domain.MaxWeekday {
			return fmt.Errorf("%w: operationalDays values must be between %d and %d",
				ErrInvalidConfig, domain.MinWeekday, domain.MaxWeekday)
		}
		if _, ok := seen[day]; ok {
			return fmt.Errorf("%w: operationalDays must not contain duplicates", ErrInvalidConfig)
		}
		seen[day] = struct{}{}
	}

	if err := config.OperationalStartTime.Validate(); err != nil {
		return fmt.Errorf("%w: operationalStartTime: %v", ErrInvalidConfig, err)
	}
	if err := config.OperationalEndTime.Validate(); err != nil {
		return fmt.Errorf("%w: operationalEndTime: %v", ErrInvalidConfig, err)
	}
	if !config.OperationalStartTime.IsBefore(config.OperationalEndTime) {
		return fmt.Errorf("%w: operationalStartTime must be before operationalEndTime", ErrInvalidConfig)
	}

	return nil
}
