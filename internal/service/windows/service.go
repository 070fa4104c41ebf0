package windows

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/appointment-scheduler/internal/domain"
	windowRepo "github.com/m04kA/appointment-scheduler/internal/infra/storage/window"
	"github.com/m04kA/appointment-scheduler/internal/service/windows/models"
	"github.com/m04kA/appointment-scheduler/pkg/types"
)

// Service сервис для работы с окнами недоступности
type Service struct {
	windowRepo WindowRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса окон недоступности
func NewService(windowRepo WindowRepository, logger Logger) *Service {
	return &Service{
		windowRepo: windowRepo,
		logger:     logger,
	}
}

// Create создает окно недоступности
// Окна одной области действия не должны пересекаться между собой
func (s *Service) Create(ctx context.Context, req *models.CreateWindowRequest) (*models.WindowResponse, error) {
	scope, err := scopeFromRequest(req.Weekday, req.Date)
	if err != nil {
		s.logger.Warn("Create: invalid scope: %v", err)
		return nil, err
	}

	s.logger.Info("Create: creating window %s %s-%s", scope, req.StartTime, req.EndTime)

	startTime, endTime, err := parseTimes(req.StartTime, req.EndTime)
	if err != nil {
		s.logger.Warn("Create: invalid times: %v", err)
		return nil, err
	}

	if err := validateNote(req.Note); err != nil {
		s.logger.Warn("Create: invalid note: %v", err)
		return nil, err
	}

	window := &domain.UnavailableWindow{
		Scope:     scope,
		StartTime: startTime,
		EndTime:   endTime,
		Note:      req.Note,
	}

	if err := s.checkOverlap(ctx, window, uuid.Nil); err != nil {
		return nil, err
	}

	created, err := s.windowRepo.Create(ctx, window)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created window id=%s (%s)", created.ID, scope)
	return models.FromDomainWindow(created), nil
}

// List получает все окна, отсортированные по области действия и времени начала
func (s *Service) List(ctx context.Context) (*models.WindowListResponse, error) {
	windows, err := s.windowRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainWindowList(windows), nil
}

// Update обновляет окно недоступности
// Поддерживает частичное обновление; объединенный результат валидируется
// и заново проверяется на пересечения (исключая само окно)
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *models.UpdateWindowRequest) (*models.WindowResponse, error) {
	s.logger.Info("Update: updating window id=%s", id)

	// 1. Получаем существующее окно
	window, err := s.windowRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, windowRepo.ErrWindowNotFound) {
			s.logger.Warn("Update: window id=%s not found", id)
			return nil, ErrWindowNotFound
		}
		s.logger.Error("Update: repository error for window id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	// 2. Применяем обновления
	updated := *window
	if err := s.applyUpdate(&updated, req); err != nil {
		s.logger.Warn("Update: invalid request for window id=%s: %v", id, err)
		return nil, err
	}

	// 3. Валидируем объединенный результат
	if !updated.StartTime.IsBefore(updated.EndTime) {
		s.logger.Warn("Update: startTime must be before endTime for window id=%s", id)
		return nil, fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
	}
	if err := validateNote(updated.Note); err != nil {
		s.logger.Warn("Update: invalid note for window id=%s: %v", id, err)
		return nil, err
	}

	// 4. Проверяем пересечения, исключая само окно
	if err := s.checkOverlap(ctx, &updated, id); err != nil {
		return nil, err
	}

	// 5. Сохраняем
	saved, err := s.windowRepo.Update(ctx, id, &updated)
	if err != nil {
		if errors.Is(err, windowRepo.ErrWindowNotFound) {
			s.logger.Warn("Update: window id=%s not found during update", id)
			return nil, ErrWindowNotFound
		}
		s.logger.Error("Update: repository error for window id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated window id=%s", id)
	return models.FromDomainWindow(saved), nil
}

// Delete удаляет окно недоступности
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	s.logger.Info("Delete: deleting window id=%s", id)

	if err := s.windowRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, windowRepo.ErrWindowNotFound) {
			s.logger.Warn("Delete: window id=%s not found", id)
			return ErrWindowNotFound
		}
		s.logger.Error("Delete: repository error for window id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted window id=%s", id)
	return nil
}

// checkOverlap проверяет пересечения с окнами той же области действия
// excludeID исключает само окно при обновлении (uuid.Nil при создании)
func (s *Service) checkOverlap(ctx context.Context, window *domain.UnavailableWindow, excludeID uuid.UUID) error {
	existing, err := s.windowRepo.GetByScope(ctx, window.Scope)
	if err != nil {
		s.logger.Error("checkOverlap: repository error: %v", err)
		return fmt.Errorf("%w: checkOverlap - repository error: %v", ErrInternal, err)
	}

	newStart, err := window.StartMinutes()
	if err != nil {
		return fmt.Errorf("%w: startTime: %v", ErrInvalidInput, err)
	}
	newEnd, err := window.EndMinutes()
	if err != nil {
		return fmt.Errorf("%w: endTime: %v", ErrInvalidInput, err)
	}

	for _, other := range existing {
		if other.ID == excludeID {
			continue
		}

		otherStart, err := other.StartMinutes()
		if err != nil {
			return fmt.Errorf("%w: checkOverlap - stored window %s: %v", ErrInternal, other.ID, err)
		}
		otherEnd, err := other.EndMinutes()
		if err != nil {
			return fmt.Errorf("%w: checkOverlap - stored window %s: %v", ErrInternal, other.ID, err)
		}

		// Полуоткрытые интервалы: соприкосновение границами не является пересечением
		if newStart < otherEnd && newEnd > otherStart {
			s.logger.Warn("checkOverlap: window %s-%s overlaps existing window id=%s (%s)",
				window.StartTime, window.EndTime, other.ID, window.Scope)
			return ErrWindowOverlap
		}
	}

	return nil
}

// applyUpdate применяет непустые поля запроса к окну
func (s *Service) applyUpdate(window *domain.UnavailableWindow, req *models.UpdateWindowRequest) error {
	if req.Weekday != nil || req.Date != nil {
		scope, err := scopeFromRequest(req.Weekday, req.Date)
		if err != nil {
			return err
		}
		window.Scope = scope
	}
	if req.StartTime != nil {
		startTime, err := types.NewTimeStringFromString(*req.StartTime)
		if err != nil {
			return fmt.Errorf("%w: startTime: %v", ErrInvalidInput, err)
		}
		window.StartTime = startTime
	}
	if req.EndTime != nil {
		endTime, err := types.NewTimeStringFromString(*req.EndTime)
		if err != nil {
			return fmt.Errorf("%w: endTime: %v", ErrInvalidInput, err)
		}
		window.EndTime = endTime
	}
	if req.Note != nil {
		window.Note = req.Note
	}
	return nil
}

// scopeFromRequest строит область действия из пары опциональных полей запроса
// Ровно одно из weekday/date должно быть задано
func scopeFromRequest(weekday *int, date *string) (domain.WindowScope, error) {
	switch {
	case weekday != nil && date != nil:
		return domain.WindowScope{}, fmt.Errorf("%w: weekday and date are mutually exclusive", ErrInvalidInput)
	case weekday != nil:
		scope, err := domain.NewRecurringScope(*weekday)
		if err != nil {
			return domain.WindowScope{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return scope, nil
	case date != nil:
		parsed, err := types.NewDateStringFromString(*date)
		if err != nil {
			return domain.WindowScope{}, fmt.Errorf("%w: date: %v", ErrInvalidInput, err)
		}
		scope, err := domain.NewOneOffScope(parsed)
		if err != nil {
			return domain.WindowScope{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return scope, nil
	default:
		return domain.WindowScope{}, fmt.Errorf("%w: either weekday or date is required", ErrInvalidInput)
	}
}

// parseTimes парсит и валидирует пару времен окна
func parseTimes(start, end string) (types.TimeString, types.TimeString, error) {
	startTime, err := types.NewTimeStringFromString(start)
	if err != nil {
		return "", "", fmt.Errorf("%w: startTime: %v", ErrInvalidInput, err)
	}
	endTime, err := types.NewTimeStringFromString(end)
	if err != nil {
		return "", "", fmt.Errorf("%w: endTime: %v", ErrInvalidInput, err)
	}
	if !startTime.IsBefore(endTime) {
		return "", "", fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
	}
	return startTime, endTime, nil
}

// validateNote проверяет длину примечания
func validateNote(note *string) error {
	if note != nil && len(*note) > domain.MaxNoteLength {
		return fmt.Errorf("%w: note must not exceed %d characters", ErrInvalidInput, domain.MaxNoteLength)
	}
	return nil
}
