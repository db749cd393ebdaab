package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

// availableSlots вычитает из сетки занятые и скрытые слоты
// Для сегодняшней даты убираются слоты, начало которых не позже now
func availableSlots(
	base []types.TimeString,
	bookings []*domain.Booking,
	blocked []types.TimeString,
	date time.Time,
	now time.Time,
) []types.TimeString {
	excluded := make(map[int]struct{}, len(bookings)+len(blocked))
	for _, b := range bookings {
		excluded[b.StartTime.Minutes()] = struct{}{}
	}
	for _, t := range blocked {
		excluded[t.Minutes()] = struct{}{}
	}

	isToday := truncateDay(date).Equal(truncateDay(now))

	result := make([]types.TimeString, 0, len(base))
	for _, slot := range base {
		if _, ok := excluded[slot.Minutes()]; ok {
			continue
		}
		if isToday && !slot.OnDate(date).After(now) {
			continue
		}
		result = append(result, slot)
	}

	domain.SortTimes(result)
	return result
}
