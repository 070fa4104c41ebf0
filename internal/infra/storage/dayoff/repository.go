package dayoff

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/appointment-scheduler/internal/domain"
	"github.com/m04kA/appointment-scheduler/pkg/dbmetrics"
	"github.com/m04kA/appointment-scheduler/pkg/psqlbuilder"
	"github.com/m04kA/appointment-scheduler/pkg/types"
)

const uniqueViolationCode = "23505"

var dayOffColumns = []string{"id", "date", "note", "created_at"}

// Repository репозиторий для работы с выходными днями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория выходных
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает выходной день
// Дата уникальна: повторное создание на ту же дату возвращает ErrDuplicateDate
func (r *Repository) Create(ctx context.Context, dayOff *domain.DayOff) (*domain.DayOff, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if dayOff.ID == uuid.Nil {
		dayOff.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert("days_off").
		Columns("id", "date", "note").
		Values(dayOff.ID, dayOff.Date, dayOff.Note).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolationCode {
			return nil, ErrDuplicateDate
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	dayOff.CreatedAt = createdAt.Time

	return dayOff, nil
}

// GetByID получает выходной по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.DayOff, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByDate получает выходной по дате (точное совпадение)
func (r *Repository) GetByDate(ctx context.Context, date types.DateString) (*domain.DayOff, error) {
	return r.getOne(ctx, squirrel.Eq{"date": date})
}

// List получает все выходные, отсортированные по дате
func (r *Repository) List(ctx context.Context) ([]*domain.DayOff, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(dayOffColumns...).
		From("days_off").
		OrderBy("date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	daysOff := make([]*domain.DayOff, 0)
	for rows.Next() {
		var d domain.DayOff
		var createdAt sql.NullTime

		if err := rows.Scan(&d.ID, &d.Date, &d.Note, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %w", ErrScanRow, err)
		}

		d.CreatedAt = createdAt.Time
		daysOff = append(daysOff, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return daysOff, nil
}

// UpdateNote обновляет примечание выходного
// Дата выходного неизменяема после создания
func (r *Repository) UpdateNote(ctx context.Context, id uuid.UUID, note *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("days_off").
		Set("note", note).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateNote - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateNote - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateNote - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrDayOffNotFound
	}

	return nil
}

// Delete удаляет выходной
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("days_off").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrDayOffNotFound
	}

	return nil
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq) (*domain.DayOff, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(dayOffColumns...).
		From("days_off").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getOne - build select query: %v", ErrBuildQuery, err)
	}

	var d domain.DayOff
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(&d.ID, &d.Date, &d.Note, &createdAt)
	if err == sql.ErrNoRows {
		return nil, ErrDayOffNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - scan day off: %w", ErrScanRow, err)
	}

	d.CreatedAt = createdAt.Time
	return &d, nil
}
