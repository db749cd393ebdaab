package reminders

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// Service рассылка напоминаний о записях (за 24 часа, 2 часа и 30 минут)
type Service struct {
	bookingRepo  BookingRepository
	notifier     Notifier
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

func NewService(
	bookingRepo BookingRepository,
	notifier Notifier,
	metrics Metrics,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		notifier:     notifier,
		metrics:      metrics,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Sweep отправляет все наступившие напоминания и возвращает их количество
//
// Виды обходятся от ближайшего к приему. Если запись уже получила (или
// получает в этом проходе) более позднее напоминание, более ранние только
// отмечаются: за час до приема не нужно слать "завтра у вас стрижка".
// Отметка ставится до отправки, поэтому параллельные процессы не дублируют
// напоминание; при ошибке доставки оно теряется и попадает в лог.
func (s *Service) Sweep(ctx context.Context) (int, error) {
	now := s.timeProvider.Now()
	handled := make(map[string]struct{})
	sent := 0

	for i := len(domain.AllReminderKinds) - 1; i >= 0; i-- {
		kind := domain.AllReminderKinds[i]

		due, err := s.bookingRepo.ListDueForReminder(ctx, kind, now)
		if err != nil {
			s.logger.Error("Sweep: failed to list bookings for %s reminder: %v", kind, err)
			return sent, fmt.Errorf("%w: Sweep - list %s: %w", ErrInternal, kind, err)
		}

		for _, booking := range due {
			_, seen := handled[booking.ID]
			skip := seen || laterReminderSent(booking, kind)
			handled[booking.ID] = struct{}{}

			claimed, err := s.bookingRepo.MarkReminderSent(ctx, booking.ID, kind, now)
			if err != nil {
				s.logger.Error("Sweep: failed to mark %s reminder for booking id=%s: %v", kind, booking.ID, err)
				continue
			}
			if !claimed || skip {
				continue
			}

			if err := s.notifier.SendReminder(ctx, kind, booking); err != nil {
				s.logger.Error("Sweep: failed to send %s reminder for booking id=%s: %v", kind, booking.ID, err)
				continue
			}

			s.metrics.IncReminderSent(kind.String())
			sent++
		}
	}

	if sent > 0 {
		s.logger.Info("Sweep: sent %d reminders", sent)
	}
	return sent, nil
}

// laterReminderSent проверяет, отправлялось ли напоминание ближе к приему, чем kind
func laterReminderSent(booking *domain.Booking, kind domain.ReminderKind) bool {
	for _, other := range domain.AllReminderKinds {
		if other.Offset() < kind.Offset() && booking.ReminderSentAt(other) != nil {
			return true
		}
	}
	return false
}
