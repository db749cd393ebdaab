package memory

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

type OverrideRepository struct {
	store *Store
}

func (r *OverrideRepository) Get(ctx context.Context, date time.Time) (*domain.DayOverride, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	override := domain.EmptyOverride(date)
	if row, ok := s.overrides[dateKey(date)]; ok {
		override.Blocked = row.blocked
		override.ExtraSlots = row.extraSlots
	}
	override.BlockedTimes = s.blockedTimesLocked(date)
	return override, nil
}

func (r *OverrideRepository) SetBlocked(ctx context.Context, date time.Time, blocked bool, at time.Time) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dayRowLocked(date).blocked = blocked
	return nil
}

func (r *OverrideRepository) SetExtraSlots(ctx context.Context, date time.Time, value int, at time.Time) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dayRowLocked(date).extraSlots = value
	return nil
}

func (r *OverrideRepository) ListBlockedTimes(ctx context.Context, date time.Time) ([]types.TimeString, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.blockedTimesLocked(date), nil
}

func (r *OverrideRepository) AddBlockedTime(ctx context.Context, date time.Time, slot types.TimeString, at time.Time) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	key := dateKey(date)
	if s.blockedTimes[key] == nil {
		s.blockedTimes[key] = make(map[types.TimeString]struct{})
	}
	s.blockedTimes[key][slot] = struct{}{}
	return nil
}

func (r *OverrideRepository) RemoveBlockedTime(ctx context.Context, date time.Time, slot types.TimeString) (bool, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	set := s.blockedTimes[dateKey(date)]
	if _, ok := set[slot]; !ok {
		return false, nil
	}
	delete(set, slot)
	return true, nil
}

func (s *Store) dayRowLocked(date time.Time) *dayRow {
	key := dateKey(date)
	row, ok := s.overrides[key]
	if !ok {
		row = &dayRow{}
		s.overrides[key] = row
	}
	return row
}

func (s *Store) blockedTimesLocked(date time.Time) []types.TimeString {
	result := make([]types.TimeString, 0)
	for slot := range s.blockedTimes[dateKey(date)] {
		result = append(result, slot)
	}
	domain.SortTimes(result)
	return result
}
