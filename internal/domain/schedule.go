package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

// Window рабочее окно дня, From < To
type Window struct {
	From types.TimeString
	To   types.TimeString
}

// Validate проверяет формат границ и порядок From < To
// Кратность шагу слотов здесь не проверяется - её обеспечивает генератор
func (w Window) Validate() error {
	if err := w.From.Validate(); err != nil {
		return fmt.Errorf("%w: from: %v", ErrInvalidWindow, err)
	}
	if err := w.To.Validate(); err != nil {
		return fmt.Errorf("%w: to: %v", ErrInvalidWindow, err)
	}
	if !w.From.IsBefore(w.To) {
		return fmt.Errorf("%w: from %s must be before to %s", ErrInvalidWindow, w.From, w.To)
	}
	return nil
}

// WeeklyHours рабочие часы по дням недели, nil - выходной
type WeeklyHours map[time.Weekday]*Window

// For возвращает окно для дня недели (nil, если выходной)
func (h WeeklyHours) For(day time.Weekday) *Window {
	if h == nil {
		return nil
	}
	return h[day]
}

// ForDate возвращает окно для конкретной даты
func (h WeeklyHours) ForDate(date time.Time) *Window {
	return h.For(date.Weekday())
}

// DefaultWeeklyHours расписание по умолчанию: пн-сб 12:00-20:00, вс выходной
func DefaultWeeklyHours() WeeklyHours {
	hours := make(WeeklyHours, 7)
	for _, day := range Weekdays {
		if day == time.Sunday {
			hours[day] = nil
			continue
		}
		hours[day] = &Window{
			From: types.MustTimeString("12:00"),
			To:   types.MustTimeString("20:00"),
		}
	}
	return hours
}

// Weekdays дни недели в порядке отображения (с понедельника)
var Weekdays = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
	time.Sunday,
}

// WeekdayName ключ дня недели для хранения и API ("monday")
func WeekdayName(day time.Weekday) string {
	return strings.ToLower(day.String())
}

// ParseWeekday разбирает ключ дня недели
func ParseWeekday(name string) (time.Weekday, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for _, day := range Weekdays {
		if WeekdayName(day) == normalized {
			return day, nil
		}
	}
	return time.Sunday, fmt.Errorf("%w: %q", ErrInvalidWeekday, name)
}
