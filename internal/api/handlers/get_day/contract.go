package get_day

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/service/overrides/models"
)

type OverrideService interface {
	GetDay(ctx context.Context, date time.Time) (*models.DayOverrideResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
