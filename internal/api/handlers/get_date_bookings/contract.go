package get_date_bookings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/service/bookings/models"
)

type BookingService interface {
	ListActiveByDate(ctx context.Context, date time.Time) (*models.BookingListResponse, error)
	ListByDate(ctx context.Context, date time.Time) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
