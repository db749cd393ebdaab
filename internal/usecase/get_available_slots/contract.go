package get_available_slots

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
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListActiveByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error)
	ListActiveByPhone(ctx context.Context, phone string) ([]*domain.Booking, error)
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
