package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarberBooking/pkg/pgerrors"
	"github.com/m04kA/SMC-BarberBooking/pkg/psqlbuilder"
	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

const (
	tableBookings = "bookings"

	// constraintCode уникальность короткого кода
	constraintCode = "bookings_code_key"
	// constraintActiveSlot частичный уникальный индекс: одна активная запись на слот
	constraintActiveSlot = "bookings_active_slot_uidx"
)

var bookingColumns = []string{
	"id",
	"code",
	"booking_date",
	"start_time",
	"phone",
	"customer_name",
	"service",
	"status",
	"cancelled_at",
	"reminder_24h_sent_at",
	"reminder_2h_sent_at",
	"reminder_30m_sent_at",
	"created_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create атомарно создает активную запись
//
// Вставка и проверка занятости слота выполняются одним запросом, арбитр -
// частичный уникальный индекс (booking_date, start_time) WHERE status = 'active'.
// Если слот уже занят, строка не вставляется и возвращается ErrSlotNotAvailable,
// при совпадении кода - ErrDuplicateCode.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableBookings).
		Columns(
			"id",
			"code",
			"booking_date",
			"start_time",
			"phone",
			"customer_name",
			"service",
			"status",
			"created_at",
		).
		Values(
			booking.ID,
			booking.Code,
			booking.BookingDate,
			booking.StartTime,
			booking.Phone,
			booking.CustomerName,
			booking.Service,
			domain.StatusActive,
			booking.CreatedAt,
		).
		Suffix("ON CONFLICT DO NOTHING RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	// ON CONFLICT без цели не прерывает транзакцию, причину выясняем отдельным запросом
	var createdAt time.Time
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		existing, findErr := r.FindActiveConflict(ctx, booking.BookingDate, booking.StartTime)
		if findErr != nil {
			return nil, findErr
		}
		if existing != nil {
			return nil, ErrSlotNotAvailable
		}
		return nil, ErrDuplicateCode
	}
	if err != nil {
		if constraint, ok := pgerrors.UniqueViolation(err); ok {
			switch constraint {
			case constraintCode:
				return nil, ErrDuplicateCode
			case constraintActiveSlot:
				return nil, ErrSlotNotAvailable
			}
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	booking.Status = domain.StatusActive
	booking.CreatedAt = createdAt
	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id})
}

// GetByCode получает бронирование по короткому коду клиента
func (r *Repository) GetByCode(ctx context.Context, code string) (*domain.Booking, error) {
	return r.getOne(ctx, "GetByCode", squirrel.Eq{"code": code})
}

// ListActiveByDate активные записи на дату, по возрастанию времени
// Внутри транзакции строки блокируются (FOR UPDATE)
func (r *Repository) ListActiveByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error) {
	builder := psqlbuilder.Select(bookingColumns...).
		From(tableBookings).
		Where(squirrel.Eq{"booking_date": date, "status": domain.StatusActive}).
		OrderBy("start_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	return r.list(ctx, "ListActiveByDate", builder)
}

// ListByDate все записи на дату, включая отмененные (для панели барбера)
func (r *Repository) ListByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error) {
	builder := psqlbuilder.Select(bookingColumns...).
		From(tableBookings).
		Where(squirrel.Eq{"booking_date": date}).
		OrderBy("start_time ASC", "created_at ASC")

	return r.list(ctx, "ListByDate", builder)
}

// ListActiveByPhone активные записи номера по всем датам
func (r *Repository) ListActiveByPhone(ctx context.Context, phone string) ([]*domain.Booking, error) {
	builder := psqlbuilder.Select(bookingColumns...).
		From(tableBookings).
		Where(squirrel.Eq{"phone": phone, "status": domain.StatusActive}).
		OrderBy("booking_date ASC", "start_time ASC")

	return r.list(ctx, "ListActiveByPhone", builder)
}

// FindActiveConflict возвращает активную запись на (date, time) или nil, если слот свободен
func (r *Repository) FindActiveConflict(ctx context.Context, date time.Time, startTime types.TimeString) (*domain.Booking, error) {
	booking, err := r.getOne(ctx, "FindActiveConflict", squirrel.Eq{
		"booking_date": date,
		"start_time":   startTime,
		"status":       domain.StatusActive,
	})
	if errors.Is(err, ErrBookingNotFound) {
		return nil, nil
	}
	return booking, err
}

// Cancel отменяет активную запись
func (r *Repository) Cancel(ctx context.Context, id string, at time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableBookings).
		Set("status", domain.StatusCancelled).
		Set("cancelled_at", at).
		Where(squirrel.Eq{"id": id, "status": domain.StatusActive}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %w", ErrBuildQuery, err)
	}

	affected, err := r.exec(ctx, executor, "Cancel", query, args)
	if err != nil {
		return err
	}

	if affected == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return ErrNotActive
	}

	return nil
}

// Restore возвращает отмененную запись в активное состояние
//
// Проверка "на этом слоте нет другой активной записи" и смена статуса
// выполняются одним UPDATE. Гонка с параллельной вставкой ловится
// частичным уникальным индексом и тоже возвращается как ErrSlotNotAvailable.
func (r *Repository) Restore(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableBookings).
		Set("status", domain.StatusActive).
		Set("cancelled_at", nil).
		Where(squirrel.Eq{"id": id, "status": domain.StatusCancelled}).
		Where(`NOT EXISTS (
			SELECT 1 FROM bookings o
			WHERE o.booking_date = bookings.booking_date
			  AND o.start_time = bookings.start_time
			  AND o.status = ?
			  AND o.id <> bookings.id
		)`, domain.StatusActive).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Restore - build update query: %w", ErrBuildQuery, err)
	}

	affected, err := r.exec(ctx, executor, "Restore", query, args)
	if err != nil {
		if constraint, ok := pgerrors.UniqueViolation(err); ok && constraint == constraintActiveSlot {
			return ErrSlotNotAvailable
		}
		return err
	}

	if affected == 0 {
		booking, err := r.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if !booking.IsCancelled() {
			return ErrNotCancelled
		}
		return ErrSlotNotAvailable
	}

	return nil
}

// Delete удаляет запись физически (явная очистка барбером)
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableBookings).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %w", ErrBuildQuery, err)
	}

	affected, err := r.exec(ctx, executor, "Delete", query, args)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// PurgeExpired удаляет все записи (любого статуса), которые начинаются раньше cutoff
// Возвращает количество удаленных записей
func (r *Repository) PurgeExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	cutoffDate := time.Date(cutoff.Year(), cutoff.Month(), cutoff.Day(), 0, 0, 0, 0, time.UTC)
	cutoffTime := types.NewTimeString(cutoff)

	query, args, err := psqlbuilder.Delete(tableBookings).
		Where(squirrel.Or{
			squirrel.Lt{"booking_date": cutoffDate},
			squirrel.And{
				squirrel.Eq{"booking_date": cutoffDate},
				squirrel.Lt{"start_time": cutoffTime},
			},
		}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: PurgeExpired - build delete query: %w", ErrBuildQuery, err)
	}

	return r.exec(ctx, executor, "PurgeExpired", query, args)
}

// ListDueForReminder активные записи, для которых пора отправить напоминание kind
// Прием еще не начался, до начала осталось не больше kind.Offset(), напоминание не отправлялось
func (r *Repository) ListDueForReminder(ctx context.Context, kind domain.ReminderKind, now time.Time) ([]*domain.Booking, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: ListDueForReminder - unknown reminder kind %d", ErrBuildQuery, kind)
	}

	horizon := now.Add(kind.Offset())

	builder := psqlbuilder.Select(bookingColumns...).
		From(tableBookings).
		Where(squirrel.Eq{"status": domain.StatusActive, kind.Column(): nil}).
		Where(squirrel.GtOrEq{"booking_date": truncateDay(now)}).
		Where(squirrel.LtOrEq{"booking_date": truncateDay(horizon)}).
		Where("booking_date + CAST(start_time AS TIME) > ?", now).
		Where("booking_date + CAST(start_time AS TIME) <= ?", horizon).
		OrderBy("booking_date ASC", "start_time ASC")

	return r.list(ctx, "ListDueForReminder", builder)
}

// MarkReminderSent отмечает отправку напоминания
// Возвращает false, если отметка уже стояла (напоминание отправил другой процесс)
func (r *Repository) MarkReminderSent(ctx context.Context, id string, kind domain.ReminderKind, at time.Time) (bool, error) {
	if !kind.Valid() {
		return false, fmt.Errorf("%w: MarkReminderSent - unknown reminder kind %d", ErrBuildQuery, kind)
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableBookings).
		Set(kind.Column(), at).
		Where(squirrel.Eq{"id": id, kind.Column(): nil}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: MarkReminderSent - build update query: %w", ErrBuildQuery, err)
	}

	affected, err := r.exec(ctx, executor, "MarkReminderSent", query, args)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Sqlizer) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From(tableBookings).
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %w", ErrBuildQuery, op, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan booking: %w", ErrScanRow, op, err)
	}

	return booking, nil
}

func (r *Repository) list(ctx context.Context, op string, builder squirrel.SelectBuilder) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %w", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %w", ErrExecQuery, op, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %w", ErrScanRow, op, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %w", ErrScanRow, op, err)
	}

	return bookings, nil
}

func (r *Repository) exec(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) (int64, error) {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: %s - execute: %w", ErrExecQuery, op, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %s - get rows affected: %w", ErrExecQuery, op, err)
	}

	return affected, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var cancelledAt, r24h, r2h, r30m sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.Code,
		&booking.BookingDate,
		&booking.StartTime,
		&booking.Phone,
		&booking.CustomerName,
		&booking.Service,
		&booking.Status,
		&cancelledAt,
		&r24h,
		&r2h,
		&r30m,
		&booking.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CancelledAt = nullTimePtr(cancelledAt)
	booking.Reminder24hSentAt = nullTimePtr(r24h)
	booking.Reminder2hSentAt = nullTimePtr(r2h)
	booking.Reminder30mSentAt = nullTimePtr(r30m)

	return &booking, nil
}

func nullTimePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
