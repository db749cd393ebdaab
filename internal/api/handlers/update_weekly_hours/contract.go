package update_weekly_hours

import (
	"context"

	"github.com/m04kA/SMC-BarberBooking/internal/service/schedule/models"
)

type ScheduleService interface {
	ApplyWeek(ctx context.Context, days []models.DayHours) error
	GetWeeklyHoursView(ctx context.Context) (*models.WeeklyHoursResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
