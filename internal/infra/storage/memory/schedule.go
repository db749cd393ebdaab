package memory

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

type ScheduleRepository struct {
	store *Store
}

func (r *ScheduleRepository) GetWeeklyHours(ctx context.Context) (domain.WeeklyHours, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	hours := make(domain.WeeklyHours, len(s.weeklyHours))
	for day, window := range s.weeklyHours {
		hours[day] = cloneWindow(window)
	}
	return hours, nil
}

func (r *ScheduleRepository) SetDay(ctx context.Context, day time.Weekday, window *domain.Window, at time.Time) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.weeklyHours[day] = cloneWindow(window)
	return nil
}

func (r *ScheduleRepository) SeedDefaults(ctx context.Context, hours domain.WeeklyHours, at time.Time) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, day := range domain.Weekdays {
		if _, ok := s.weeklyHours[day]; !ok {
			s.weeklyHours[day] = cloneWindow(hours.For(day))
		}
	}
	return nil
}

func cloneWindow(w *domain.Window) *domain.Window {
	if w == nil {
		return nil
	}
	c := *w
	return &c
}
