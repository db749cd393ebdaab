package schedule

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// ScheduleRepository интерфейс хранилища недельного расписания
type ScheduleRepository interface {
	GetWeeklyHours(ctx context.Context) (domain.WeeklyHours, error)
	SetDay(ctx context.Context, day time.Weekday, window *domain.Window, at time.Time) error
	SeedDefaults(ctx context.Context, hours domain.WeeklyHours, at time.Time) error
}

type TimeProvider interface {
	Now() time.Time
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
