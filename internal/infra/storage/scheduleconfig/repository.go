package scheduleconfig

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/appointment-scheduler/internal/domain"
	"github.com/m04kA/appointment-scheduler/pkg/dbmetrics"
	"github.com/m04kA/appointment-scheduler/pkg/psqlbuilder"
)

// Repository репозиторий для работы с singleton-конфигурацией расписания
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория конфигурации
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get возвращает конфигурацию расписания.
// Логически в таблице не больше одной строки; на случай гонки при ленивом
// создании берется самая старая (ORDER BY id LIMIT 1), чтобы все читатели
// сходились к одной и той же строке.
func (r *Repository) Get(ctx context.Context) (*domain.ScheduleConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"slot_duration_minutes",
		"max_slots_per_appointment",
		"operational_days",
		"operational_start_time",
		"operational_end_time",
		"created_at",
		"updated_at",
	).
		From("schedule_config").
		OrderBy("id ASC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var config domain.ScheduleConfig
	var days pq.Int64Array
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&config.ID,
		&config.SlotDurationMinutes,
		&config.MaxSlotsPerAppointment,
		&days,
		&config.OperationalStartTime,
		&config.OperationalEndTime,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan config: %w", ErrScanRow, err)
	}

	config.OperationalDays = fromInt64Array(days)
	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	return &config, nil
}

// Create создает строку конфигурации
func (r *Repository) Create(ctx context.Context, config *domain.ScheduleConfig) (*domain.ScheduleConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("schedule_config").
		Columns(
			"slot_duration_minutes",
			"max_slots_per_appointment",
			"operational_days",
			"operational_start_time",
			"operational_end_time",
		).
		Values(
			config.SlotDurationMinutes,
			config.MaxSlotsPerAppointment,
			toInt64Array(config.OperationalDays),
			config.OperationalStartTime,
			config.OperationalEndTime,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&config.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	return config, nil
}

// Update обновляет конфигурацию целиком (все поля)
func (r *Repository) Update(ctx context.Context, id int64, config *domain.ScheduleConfig) (*domain.ScheduleConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("schedule_config").
		Set("slot_duration_minutes", config.SlotDurationMinutes).
		Set("max_slots_per_appointment", config.MaxSlotsPerAppointment).
		Set("operational_days", toInt64Array(config.OperationalDays)).
		Set("operational_start_time", config.OperationalStartTime).
		Set("operational_end_time", config.OperationalEndTime).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	config.ID = id
	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	return config, nil
}

func toInt64Array(days []int) pq.Int64Array {
	arr := make(pq.Int64Array, len(days))
	for i, d := range days {
		arr[i] = int64(d)
	}
	return arr
}

func fromInt64Array(arr pq.Int64Array) []int {
	days := make([]int, len(arr))
	for i, d := range arr {
		days[i] = int(d)
	}
	return days
}
