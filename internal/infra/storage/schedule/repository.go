package schedule

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarberBooking/pkg/psqlbuilder"
	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

const tableWeeklyHours = "weekly_hours"

// Repository хранилище недельного расписания (строка на день недели)
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetWeeklyHours возвращает сохраненные дни. Пустая карта - расписание еще не заведено
func (r *Repository) GetWeeklyHours(ctx context.Context) (domain.WeeklyHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("weekday", "is_open", "open_from", "open_to").
		From(tableWeeklyHours).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWeeklyHours - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWeeklyHours - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	hours := make(domain.WeeklyHours, 7)
	for rows.Next() {
		var (
			name     string
			isOpen   bool
			from, to sql.NullString
		)
		if err := rows.Scan(&name, &isOpen, &from, &to); err != nil {
			return nil, fmt.Errorf("%w: GetWeeklyHours - scan row: %w", ErrScanRow, err)
		}

		day, err := domain.ParseWeekday(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorruptedRow, err)
		}

		if !isOpen {
			hours[day] = nil
			continue
		}

		window, err := parseWindow(from.String, to.String)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrCorruptedRow, name, err)
		}
		hours[day] = window
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetWeeklyHours - rows error: %w", ErrScanRow, err)
	}

	return hours, nil
}

// SetDay сохраняет окно для дня недели, nil - выходной
func (r *Repository) SetDay(ctx context.Context, day time.Weekday, window *domain.Window, at time.Time) error {
	return r.upsert(ctx, "SetDay", day, window, at,
		"ON CONFLICT (weekday) DO UPDATE SET is_open = EXCLUDED.is_open, open_from = EXCLUDED.open_from, "+
			"open_to = EXCLUDED.open_to, updated_at = EXCLUDED.updated_at")
}

// SeedDefaults заводит отсутствующие дни, не трогая уже сохраненные
func (r *Repository) SeedDefaults(ctx context.Context, hours domain.WeeklyHours, at time.Time) error {
	for _, day := range domain.Weekdays {
		if err := r.upsert(ctx, "SeedDefaults", day, hours.For(day), at, "ON CONFLICT (weekday) DO NOTHING"); err != nil {
			return err
		}
	}
	return nil
}

func (r *Repository) upsert(ctx context.Context, op string, day time.Weekday, window *domain.Window, at time.Time, onConflict string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	var from, to interface{}
	if window != nil {
		from, to = window.From.String(), window.To.String()
	}

	query, args, err := psqlbuilder.Insert(tableWeeklyHours).
		Columns("weekday", "is_open", "open_from", "open_to", "updated_at").
		Values(domain.WeekdayName(day), window != nil, from, to, at).
		Suffix(onConflict).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s - build insert query: %w", ErrBuildQuery, op, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %s - execute insert: %w", ErrExecQuery, op, err)
	}
	return nil
}

func parseWindow(from, to string) (*domain.Window, error) {
	fromTS, err := types.NewTimeStringFromString(from)
	if err != nil {
		return nil, err
	}
	toTS, err := types.NewTimeStringFromString(to)
	if err != nil {
		return nil, err
	}
	window := &domain.Window{From: fromTS, To: toTS}
	if err := window.Validate(); err != nil {
		return nil, err
	}
	return window, nil
}
