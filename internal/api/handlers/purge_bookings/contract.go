package purge_bookings

import "context"

type BookingService interface {
	PurgeExpired(ctx context.Context, graceMinutes int) (int64, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
