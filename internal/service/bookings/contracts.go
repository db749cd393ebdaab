package bookings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetByCode(ctx context.Context, code string) (*domain.Booking, error)
	ListActiveByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error)
	ListByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error)
	ListActiveByPhone(ctx context.Context, phone string) ([]*domain.Booking, error)
	Cancel(ctx context.Context, id string, at time.Time) error
	Restore(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	PurgeExpired(ctx context.Context, cutoff time.Time) (int64, error)
}

// OverrideRepository чтение исключений по датам
type OverrideRepository interface {
	Get(ctx context.Context, date time.Time) (*domain.DayOverride, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics счетчики бронирований
type Metrics interface {
	AddBookingsPurged(count int64)
}

// TimeProvider интерфейс для получения текущего времени салона
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
