package set_extra_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// ScheduleProvider источник недельного расписания
type ScheduleProvider interface {
	GetWeeklyHours(ctx context.Context) (domain.WeeklyHours, error)
}

// OverrideRepository интерфейс хранилища исключений по датам
type OverrideRepository interface {
	Get(ctx context.Context, date time.Time) (*domain.DayOverride, error)
	SetExtraSlots(ctx context.Context, date time.Time, value int, at time.Time) error
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListActiveByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
