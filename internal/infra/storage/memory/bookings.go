package memory

import (
	"context"
	"sort"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

type BookingRepository struct {
	store *Store
}

// Create проверяет слот и вставляет запись под одной блокировкой
func (r *BookingRepository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.bookings {
		if existing.Code == booking.Code {
			return nil, bookingRepo.ErrDuplicateCode
		}
		if existing.IsActive() && existing.BookingDate.Equal(booking.BookingDate) && existing.StartTime.Equal(booking.StartTime) {
			return nil, bookingRepo.ErrSlotNotAvailable
		}
	}

	booking.Status = domain.StatusActive
	s.bookings[booking.ID] = cloneBooking(booking)
	return booking, nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	booking, ok := s.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return cloneBooking(booking), nil
}

func (r *BookingRepository) GetByCode(ctx context.Context, code string) (*domain.Booking, error) {
	found := r.filter(func(b *domain.Booking) bool { return b.Code == code })
	if len(found) == 0 {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return found[0], nil
}

func (r *BookingRepository) ListActiveByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error) {
	return r.filter(func(b *domain.Booking) bool {
		return b.IsActive() && b.BookingDate.Equal(date)
	}), nil
}

func (r *BookingRepository) ListByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error) {
	return r.filter(func(b *domain.Booking) bool {
		return b.BookingDate.Equal(date)
	}), nil
}

func (r *BookingRepository) ListActiveByPhone(ctx context.Context, phone string) ([]*domain.Booking, error) {
	return r.filter(func(b *domain.Booking) bool {
		return b.IsActive() && b.Phone == phone
	}), nil
}

func (r *BookingRepository) FindActiveConflict(ctx context.Context, date time.Time, startTime types.TimeString) (*domain.Booking, error) {
	found := r.filter(func(b *domain.Booking) bool {
		return b.IsActive() && b.BookingDate.Equal(date) && b.StartTime.Equal(startTime)
	})
	if len(found) == 0 {
		return nil, nil
	}
	return found[0], nil
}

func (r *BookingRepository) Cancel(ctx context.Context, id string, at time.Time) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	booking, ok := s.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	if !booking.IsActive() {
		return bookingRepo.ErrNotActive
	}

	booking.Status = domain.StatusCancelled
	cancelledAt := at
	booking.CancelledAt = &cancelledAt
	return nil
}

// Restore проверяет, что слот свободен, и меняет статус под одной блокировкой
func (r *BookingRepository) Restore(ctx context.Context, id string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	booking, ok := s.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	if !booking.IsCancelled() {
		return bookingRepo.ErrNotCancelled
	}

	for otherID, other := range s.bookings {
		if otherID != id && other.IsActive() &&
			other.BookingDate.Equal(booking.BookingDate) && other.StartTime.Equal(booking.StartTime) {
			return bookingRepo.ErrSlotNotAvailable
		}
	}

	booking.Status = domain.StatusActive
	booking.CancelledAt = nil
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, id string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bookings[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	delete(s.bookings, id)
	return nil
}

func (r *BookingRepository) PurgeExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	var purged int64
	for id, booking := range s.bookings {
		if booking.StartsAt().Before(cutoff) {
			delete(s.bookings, id)
			purged++
		}
	}
	return purged, nil
}

func (r *BookingRepository) ListDueForReminder(ctx context.Context, kind domain.ReminderKind, now time.Time) ([]*domain.Booking, error) {
	horizon := now.Add(kind.Offset())
	return r.filter(func(b *domain.Booking) bool {
		startsAt := b.StartsAt()
		return b.IsActive() &&
			b.ReminderSentAt(kind) == nil &&
			startsAt.After(now) &&
			!startsAt.After(horizon)
	}), nil
}

func (r *BookingRepository) MarkReminderSent(ctx context.Context, id string, kind domain.ReminderKind, at time.Time) (bool, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	booking, ok := s.bookings[id]
	if !ok {
		return false, bookingRepo.ErrBookingNotFound
	}
	if booking.ReminderSentAt(kind) != nil {
		return false, nil
	}

	sentAt := at
	switch kind {
	case domain.ReminderH24:
		booking.Reminder24hSentAt = &sentAt
	case domain.ReminderH2:
		booking.Reminder2hSentAt = &sentAt
	case domain.ReminderM30:
		booking.Reminder30mSentAt = &sentAt
	default:
		return false, nil
	}
	return true, nil
}

// filter возвращает копии подходящих записей, отсортированные по дате и времени
func (r *BookingRepository) filter(match func(b *domain.Booking) bool) []*domain.Booking {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Booking, 0)
	for _, booking := range s.bookings {
		if match(booking) {
			result = append(result, cloneBooking(booking))
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].BookingDate.Equal(result[j].BookingDate) {
			return result[i].BookingDate.Before(result[j].BookingDate)
		}
		if !result[i].StartTime.Equal(result[j].StartTime) {
			return result[i].StartTime.IsBefore(result[j].StartTime)
		}
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result
}

func cloneBooking(b *domain.Booking) *domain.Booking {
	c := *b
	c.CancelledAt = cloneTime(b.CancelledAt)
	c.Reminder24hSentAt = cloneTime(b.Reminder24hSentAt)
	c.Reminder2hSentAt = cloneTime(b.Reminder2hSentAt)
	c.Reminder30mSentAt = cloneTime(b.Reminder30mSentAt)
	return &c
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
