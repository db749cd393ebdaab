package overrides

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

// OverrideRepository интерфейс хранилища исключений по датам
type OverrideRepository interface {
	Get(ctx context.Context, date time.Time) (*domain.DayOverride, error)
	SetBlocked(ctx context.Context, date time.Time, blocked bool, at time.Time) error
	ListBlockedTimes(ctx context.Context, date time.Time) ([]types.TimeString, error)
	AddBlockedTime(ctx context.Context, date time.Time, slot types.TimeString, at time.Time) error
	RemoveBlockedTime(ctx context.Context, date time.Time, slot types.TimeString) (bool, error)
}

// BookingRepository чтение активных записей для проверки конфликтов
type BookingRepository interface {
	ListActiveByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error)
	FindActiveConflict(ctx context.Context, date time.Time, startTime types.TimeString) (*domain.Booking, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

type TimeProvider interface {
	Now() time.Time
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
