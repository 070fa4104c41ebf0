package daysoff

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/appointment-scheduler/internal/domain"
	dayoffRepo "github.com/m04kA/appointment-scheduler/internal/infra/storage/dayoff"
	"github.com/m04kA/appointment-scheduler/internal/service/daysoff/models"
	"github.com/m04kA/appointment-scheduler/pkg/types"
)

// Service сервис для работы с выходными днями
type Service struct {
	dayOffRepo DayOffRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса выходных
func NewService(dayOffRepo DayOffRepository, logger Logger) *Service {
	return &Service{
		dayOffRepo: dayOffRepo,
		logger:     logger,
	}
}

// Create создает выходной день
// Дата уникальна: повторное создание на ту же дату возвращает ErrDuplicateDate
func (s *Service) Create(ctx context.Context, req *models.CreateDayOffRequest) (*models.DayOffResponse, error) {
	s.logger.Info("Create: creating day off for date=%s", req.Date)

	date, err := types.NewDateStringFromString(req.Date)
	if err != nil {
		s.logger.Warn("Create: invalid date %q: %v", req.Date, err)
		return nil, fmt.Errorf("%w: date: %v", ErrInvalidInput, err)
	}

	if err := validateNote(req.Note); err != nil {
		s.logger.Warn("Create: invalid note: %v", err)
		return nil, err
	}

	dayOff := &domain.DayOff{
		Date: date,
		Note: req.Note,
	}

	created, err := s.dayOffRepo.Create(ctx, dayOff)
	if err != nil {
		if errors.Is(err, dayoffRepo.ErrDuplicateDate) {
			s.logger.Warn("Create: day off for date=%s already exists", req.Date)
			return nil, ErrDuplicateDate
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created day off id=%s for date=%s", created.ID, req.Date)
	return models.FromDomainDayOff(created), nil
}

// List получает все выходные, отсортированные по дате
func (s *Service) List(ctx context.Context) (*models.DayOffListResponse, error) {
	daysOff, err := s.dayOffRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainDayOffList(daysOff), nil
}

// UpdateNote обновляет примечание выходного
func (s *Service) UpdateNote(ctx context.Context, id uuid.UUID, req *models.UpdateDayOffRequest) (*models.DayOffResponse, error) {
	s.logger.Info("UpdateNote: updating day off id=%s", id)

	if err := validateNote(req.Note); err != nil {
		s.logger.Warn("UpdateNote: invalid note: %v", err)
		return nil, err
	}

	if err := s.dayOffRepo.UpdateNote(ctx, id, req.Note); err != nil {
		if errors.Is(err, dayoffRepo.ErrDayOffNotFound) {
			s.logger.Warn("UpdateNote: day off id=%s not found", id)
			return nil, ErrDayOffNotFound
		}
		s.logger.Error("UpdateNote: repository error for day off id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateNote - repository error: %v", ErrInternal, err)
	}

	updated, err := s.dayOffRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("UpdateNote: failed to fetch updated day off id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateNote - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateNote: successfully updated day off id=%s", id)
	return models.FromDomainDayOff(updated), nil
}

// Delete удаляет выходной
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	s.logger.Info("Delete: deleting day off id=%s", id)

	if err := s.dayOffRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, dayoffRepo.ErrDayOffNotFound) {
			s.logger.Warn("Delete: day off id=%s not found", id)
			return ErrDayOffNotFound
		}
		s.logger.Error("Delete: repository error for day off id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted day off id=%s", id)
	return nil
}

// validateNote проверяет длину примечания
func validateNote(note *string) error {
	if note != nil && len(*note) > domain.MaxNoteLength {
		return fmt.Errorf("%w: note must not exceed %d characters", ErrInvalidInput, domain.MaxNoteLength)
	}
	return nil
}
