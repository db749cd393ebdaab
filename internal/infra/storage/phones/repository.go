package phones

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
)

const (
	tableBlockedPhones = "blocked_phones"
	tablePhonePolicy   = "phone_policy"

	policyRowID = 1
)

// Repository черный список номеров и глобальная политика по телефонам
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// IsBlocked проверяет, есть ли номер в черном списке
func (r *Repository) IsBlocked(ctx context.Context, phone string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From(tableBlockedPhones).
		Where(squirrel.Eq{"phone": phone}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: IsBlocked - build select query: %w", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: IsBlocked - scan: %w", ErrScanRow, err)
	}
	return true, nil
}

// Block добавляет номер в черный список (для уже заблокированного обновляет причину)
func (r *Repository) Block(ctx context.Context, phone string, reason *string, at time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableBlockedPhones).
		Columns("phone", "reason", "created_at").
		Values(phone, reason, at).
		Suffix("ON CONFLICT (phone) DO UPDATE SET reason = EXCLUDED.reason").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Block - build insert query: %w", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Block - execute insert: %w", ErrExecQuery, err)
	}
	return nil
}

// Unblock убирает номер из черного списка
func (r *Repository) Unblock(ctx context.Context, phone string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableBlockedPhones).
		Where(squirrel.Eq{"phone": phone}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Unblock - build delete query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Unblock - execute delete: %w", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Unblock - get rows affected: %w", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrPhoneNotBlocked
	}
	return nil
}

// ListBlocked черный список, новые сверху
func (r *Repository) ListBlocked(ctx context.Context) ([]*domain.BlockedPhone, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("phone", "reason", "created_at").
		From(tableBlockedPhones).
		OrderBy("created_at DESC", "phone ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListBlocked - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBlocked - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.BlockedPhone, 0)
	for rows.Next() {
		var blocked domain.BlockedPhone
		if err := rows.Scan(&blocked.Phone, &blocked.Reason, &blocked.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: ListBlocked - scan row: %w", ErrScanRow, err)
		}
		result = append(result, &blocked)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBlocked - rows error: %w", ErrScanRow, err)
	}

	return result, nil
}

// GetPolicy возвращает политику. Если строки нет - политика по умолчанию (без ограничений)
func (r *Repository) GetPolicy(ctx context.Context) (*domain.PhonePolicy, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("limit_one_per_day_per_phone", "updated_at").
		From(tablePhonePolicy).
		Where(squirrel.Eq{"id": policyRowID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetPolicy - build select query: %w", ErrBuildQuery, err)
	}

	var policy domain.PhonePolicy
	err = executor.QueryRowContext(ctx, query, args...).Scan(&policy.LimitOnePerDayPerPhone, &policy.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return &domain.PhonePolicy{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetPolicy - scan: %w", ErrScanRow, err)
	}
	return &policy, nil
}

// SetPolicy сохраняет политику
func (r *Repository) SetPolicy(ctx context.Context, policy domain.PhonePolicy) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tablePhonePolicy).
		Columns("id", "limit_one_per_day_per_phone", "updated_at").
		Values(policyRowID, policy.LimitOnePerDayPerPhone, policy.UpdatedAt).
		Suffix("ON CONFLICT (id) DO UPDATE SET limit_one_per_day_per_phone = EXCLUDED.limit_one_per_day_per_phone, " +
			"updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetPolicy - build upsert query: %w", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: SetPolicy - execute upsert: %w", ErrExecQuery, err)
	}
	return nil
}
