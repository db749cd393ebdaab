package domain

import (
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

// DayOverride исключения для конкретной даты поверх недельного расписания
type DayOverride struct {
	Date         time.Time
	Blocked      bool               // день закрыт целиком
	BlockedTimes []types.TimeString // отдельные скрытые слоты, по возрастанию
	ExtraSlots   int                // [-10, 10]
}

// EmptyOverride дата без исключений
func EmptyOverride(date time.Time) *DayOverride {
	return &DayOverride{Date: date, BlockedTimes: make([]types.TimeString, 0)}
}

// IsTimeBlocked проверяет, скрыт ли слот вручную
func (o *DayOverride) IsTimeBlocked(t types.TimeString) bool {
	return ContainsSlot(o.BlockedTimes, t)
}

// ValidateExtraSlots проверяет диапазон extra slots
func ValidateExtraSlots(value int) error {
	if value < MinExtraSlots || value > MaxExtraSlots {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidExtraSlots, value, MinExtraSlots, MaxExtraSlots)
	}
	return nil
}

// SortTimes сортирует время по возрастанию
func SortTimes(times []types.TimeString) {
	sort.Slice(times, func(i, j int) bool {
		return times[i].IsBefore(times[j])
	})
}

// ScopeKind вид диапазона для массового изменения extra slots
type ScopeKind int

const (
	ScopeThisDateOnly ScopeKind = iota
	ScopeSameWeekdayUntil
	ScopeEveryDayUntil
)

func (k ScopeKind) String() string {
	switch k {
	case ScopeThisDateOnly:
		return "this_date_only"
	case ScopeSameWeekdayUntil:
		return "same_weekday_until"
	case ScopeEveryDayUntil:
		return "every_day_until"
	}
	return "unknown"
}

// ParseScopeKind разбирает вид диапазона из строки API
func ParseScopeKind(s string) (ScopeKind, error) {
	for _, kind := range []ScopeKind{ScopeThisDateOnly, ScopeSameWeekdayUntil, ScopeEveryDayUntil} {
		if kind.String() == s {
			return kind, nil
		}
	}
	return ScopeThisDateOnly, fmt.Errorf("%w: unknown kind %q", ErrInvalidScope, s)
}

// DateRangeScope диапазон дат, к которым применяется изменение
type DateRangeScope struct {
	Kind  ScopeKind
	Until time.Time // конечная дата включительно, не используется для ScopeThisDateOnly
}

func ThisDateOnly() DateRangeScope {
	return DateRangeScope{Kind: ScopeThisDateOnly}
}

func SameWeekdayUntil(until time.Time) DateRangeScope {
	return DateRangeScope{Kind: ScopeSameWeekdayUntil, Until: until}
}

func EveryDayUntil(until time.Time) DateRangeScope {
	return DateRangeScope{Kind: ScopeEveryDayUntil, Until: until}
}

// Dates возвращает конкретные даты диапазона, начиная со start
func (s DateRangeScope) Dates(start time.Time) ([]time.Time, error) {
	start = truncateDay(start)

	var step int
	switch s.Kind {
	case ScopeThisDateOnly:
		return []time.Time{start}, nil
	case ScopeSameWeekdayUntil:
		step = 7
	case ScopeEveryDayUntil:
		step = 1
	default:
		return nil, fmt.Errorf("%w: unknown kind %d", ErrInvalidScope, s.Kind)
	}

	until := truncateDay(s.Until)
	if until.Before(start) {
		return nil, fmt.Errorf("%w: end date %s is before %s",
			ErrInvalidScope, until.Format(DateFormat), start.Format(DateFormat))
	}

	dates := make([]time.Time, 0)
	for d := start; !d.After(until); d = d.AddDate(0, 0, step) {
		if len(dates) == MaxScopeDays {
			return nil, fmt.Errorf("%w: more than %d dates", ErrInvalidScope, MaxScopeDays)
		}
		dates = append(dates, d)
	}
	return dates, nil
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
