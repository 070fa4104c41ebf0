package window

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/appointment-scheduler/internal/domain"
	"github.com/m04kA/appointment-scheduler/pkg/dbmetrics"
	"github.com/m04kA/appointment-scheduler/pkg/psqlbuilder"
	"github.com/m04kA/appointment-scheduler/pkg/types"
)

var windowColumns = []string{"id", "weekday", "date", "start_time", "end_time", "note", "created_at"}

// Repository репозиторий для работы с окнами недоступности.
// Тегированная область действия domain.WindowScope хранится парой
// nullable-колонок (weekday, date); ровно одна из них заполнена
// (CHECK constraint в схеме).
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория окон недоступности
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает окно недоступности
func (r *Repository) Create(ctx context.Context, w *domain.UnavailableWindow) (*domain.UnavailableWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}

	weekday, date := scopeToColumns(w.Scope)

	query, args, err := psqlbuilder.Insert("unavailable_windows").
		Columns("id", "weekday", "date", "start_time", "end_time", "note").
		Values(w.ID, weekday, date, w.StartTime, w.EndTime, w.Note).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	w.CreatedAt = createdAt.Time

	return w, nil
}

// GetByID получает окно по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.UnavailableWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(windowColumns...).
		From("unavailable_windows").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	windows, err := r.scanWindows(rows)
	if err != nil {
		return nil, err
	}
	if len(windows) == 0 {
		return nil, ErrWindowNotFound
	}

	return windows[0], nil
}

// GetForDate получает все окна, действующие на указанную дату:
// разовые окна на эту дату и повторяющиеся окна на её день недели.
// Одним запросом - чтобы доступность считалась за линейное время (§ резолвер исключений)
func (r *Repository) GetForDate(ctx context.Context, date types.DateString, weekday int) ([]*domain.UnavailableWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(windowColumns...).
		From("unavailable_windows").
		Where(squirrel.Or{
			squirrel.Eq{"date": date},
			squirrel.And{
				squirrel.Eq{"date": nil},
				squirrel.Eq{"weekday": weekday},
			},
		}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetForDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetForDate - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanWindows(rows)
}

// GetByScope получает все окна с указанной областью действия
// (для проверки пересечений внутри области)
func (r *Repository) GetByScope(ctx context.Context, scope domain.WindowScope) ([]*domain.UnavailableWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(windowColumns...).
		From("unavailable_windows").
		OrderBy("start_time ASC")

	if scope.IsRecurring() {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"weekday": scope.Weekday})
	} else {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"date": scope.Date})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByScope - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByScope - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanWindows(rows)
}

// List получает все окна, отсортированные по области действия и времени начала
func (r *Repository) List(ctx context.Context) ([]*domain.UnavailableWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(windowColumns...).
		From("unavailable_windows").
		OrderBy("weekday ASC NULLS LAST, date ASC NULLS LAST, start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanWindows(rows)
}

// Update обновляет окно (область действия, времена, примечание)
func (r *Repository) Update(ctx context.Context, id uuid.UUID, w *domain.UnavailableWindow) (*domain.UnavailableWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	weekday, date := scopeToColumns(w.Scope)

	query, args, err := psqlbuilder.Update("unavailable_windows").
		Set("weekday", weekday).
		Set("date", date).
		Set("start_time", w.StartTime).
		Set("end_time", w.EndTime).
		Set("note", w.Note).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt)
	if err == sql.ErrNoRows {
		return nil, ErrWindowNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	w.ID = id
	w.CreatedAt = createdAt.Time

	return w, nil
}

// Delete удаляет окно недоступности
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("unavailable_windows").
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
		return ErrWindowNotFound
	}

	return nil
}

// scopeToColumns раскладывает область действия на nullable-колонки
func scopeToColumns(scope domain.WindowScope) (*int, *types.DateString) {
	if scope.IsRecurring() {
		weekday := scope.Weekday
		return &weekday, nil
	}
	date := scope.Date
	return nil, &date
}

// scanWindows сканирует результаты запроса в слайс окон
func (r *Repository) scanWindows(rows *sql.Rows) ([]*domain.UnavailableWindow, error) {
	windows := make([]*domain.UnavailableWindow, 0)

	for rows.Next() {
		var w domain.UnavailableWindow
		var weekday sql.NullInt64
		var date *types.DateString
		var createdAt sql.NullTime

		err := rows.Scan(
			&w.ID,
			&weekday,
			&date,
			&w.StartTime,
			&w.EndTime,
			&w.Note,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanWindows - scan row: %w", ErrScanRow, err)
		}

		scope, err := scopeFromColumns(weekday, date)
		if err != nil {
			return nil, fmt.Errorf("%w: scanWindows - %v", ErrScanRow, err)
		}

		w.Scope = scope
		w.CreatedAt = createdAt.Time
		windows = append(windows, &w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanWindows - rows error: %w", ErrScanRow, err)
	}

	return windows, nil
}

// scopeFromColumns восстанавливает тегированную область из nullable-колонок
func scopeFromColumns(weekday sql.NullInt64, date *types.DateString) (domain.WindowScope, error) {
	if weekday.Valid {
		return domain.NewRecurringScope(int(weekday.Int64))
	}
	if date != nil {
		return domain.NewOneOffScope(*date)
	}
	return domain.WindowScope{}, fmt.Errorf("window has neither weekday nor date")
}
