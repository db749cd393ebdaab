package override

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarberBooking/pkg/psqlbuilder"
	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

const (
	tableDayOverrides = "day_overrides"
	tableBlockedTimes = "blocked_times"
)

// Repository хранилище исключений расписания по датам
// Отсутствие строки в day_overrides означает дату без исключений
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get возвращает исключения на дату (пустые, если их нет)
func (r *Repository) Get(ctx context.Context, date time.Time) (*domain.DayOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select("blocked", "extra_slots").
		From(tableDayOverrides).
		Where(squirrel.Eq{"override_date": date})

	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %w", ErrBuildQuery, err)
	}

	override := domain.EmptyOverride(date)
	err = executor.QueryRowContext(ctx, query, args...).Scan(&override.Blocked, &override.ExtraSlots)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: Get - scan override: %w", ErrScanRow, err)
	}

	blockedTimes, err := r.ListBlockedTimes(ctx, date)
	if err != nil {
		return nil, err
	}
	override.BlockedTimes = blockedTimes

	return override, nil
}

// SetBlocked закрывает или открывает день целиком
func (r *Repository) SetBlocked(ctx context.Context, date time.Time, blocked bool, at time.Time) error {
	return r.upsert(ctx, "SetBlocked", date, "blocked", blocked, at)
}

// SetExtraSlots сохраняет количество дополнительных слотов на дату
func (r *Repository) SetExtraSlots(ctx context.Context, date time.Time, value int, at time.Time) error {
	return r.upsert(ctx, "SetExtraSlots", date, "extra_slots", value, at)
}

// ListBlockedTimes вручную скрытые слоты на дату, по возрастанию
func (r *Repository) ListBlockedTimes(ctx context.Context, date time.Time) ([]types.TimeString, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("slot_time").
		From(tableBlockedTimes).
		Where(squirrel.Eq{"override_date": date}).
		OrderBy("slot_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListBlockedTimes - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBlockedTimes - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]types.TimeString, 0)
	for rows.Next() {
		var t types.TimeString
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("%w: ListBlockedTimes - scan row: %w", ErrScanRow, err)
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBlockedTimes - rows error: %w", ErrScanRow, err)
	}

	return result, nil
}

// AddBlockedTime скрывает слот (повторное добавление ничего не меняет)
func (r *Repository) AddBlockedTime(ctx context.Context, date time.Time, slot types.TimeString, at time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableBlockedTimes).
		Columns("override_date", "slot_time", "created_at").
		Values(date, slot, at).
		Suffix("ON CONFLICT (override_date, slot_time) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: AddBlockedTime - build insert query: %w", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: AddBlockedTime - execute insert: %w", ErrExecQuery, err)
	}
	return nil
}

// RemoveBlockedTime возвращает слот. Возвращает false, если слот не был скрыт
func (r *Repository) RemoveBlockedTime(ctx context.Context, date time.Time, slot types.TimeString) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableBlockedTimes).
		Where(squirrel.Eq{"override_date": date, "slot_time": slot}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: RemoveBlockedTime - build delete query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: RemoveBlockedTime - execute delete: %w", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: RemoveBlockedTime - get rows affected: %w", ErrExecQuery, err)
	}

	return affected > 0, nil
}

func (r *Repository) upsert(ctx context.Context, op string, date time.Time, column string, value interface{}, at time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableDayOverrides).
		Columns("override_date", column, "updated_at").
		Values(date, value, at).
		Suffix(fmt.Sprintf(
			"ON CONFLICT (override_date) DO UPDATE SET %s = EXCLUDED.%s, updated_at = EXCLUDED.updated_at",
			column, column,
		)).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s - build upsert query: %w", ErrBuildQuery, op, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %s - execute upsert: %w", ErrExecQuery, op, err)
	}
	return nil
}
