package reminders

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// BookingRepository выборка записей для напоминаний
type BookingRepository interface {
	ListDueForReminder(ctx context.Context, kind domain.ReminderKind, now time.Time) ([]*domain.Booking, error)
	MarkReminderSent(ctx context.Context, id string, kind domain.ReminderKind, at time.Time) (bool, error)
}

// Notifier доставка напоминания клиенту
type Notifier interface {
	SendReminder(ctx context.Context, kind domain.ReminderKind, booking *domain.Booking) error
}

// Metrics счетчики отправленных напоминаний
type Metrics interface {
	IncReminderSent(kind string)
}

type TimeProvider interface {
	Now() time.Time
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
