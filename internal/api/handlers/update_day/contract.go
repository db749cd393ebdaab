package update_day

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/service/overrides/models"
	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

type OverrideService interface {
	SetDayBlocked(ctx context.Context, date time.Time, blocked bool) error
	ToggleBlockedTime(ctx context.Context, date time.Time, slot types.TimeString) (*models.ToggleBlockedTimeResponse, error)
	GetDay(ctx context.Context, date time.Time) (*models.DayOverrideResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
