package reminders

import (
	"context"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// LogNotifier пишет напоминания в лог
// Доставка клиенту (SMS, мессенджеры) подключается отдельной реализацией Notifier
type LogNotifier struct {
	logger Logger
}

func NewLogNotifier(logger Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) SendReminder(ctx context.Context, kind domain.ReminderKind, booking *domain.Booking) error {
	n.logger.Info("Reminder %s: booking code=%s, phone=%s, %s %s, service=%q",
		kind, booking.Code, booking.Phone, booking.BookingDate.Format(domain.DateFormat), booking.StartTime, booking.Service)
	return nil
}
