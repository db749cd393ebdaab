package clock

import "time"

// Clock отдает текущее время в часовом поясе салона
//
// Все даты и время в сервисе - "настенные" часы салона без зоны.
// Now переносит локальные компоненты в UTC, чтобы их можно было
// напрямую сравнивать с датами, разобранными через time.Parse.
type Clock struct {
	loc *time.Location
	now func() time.Time
}

// New создает часы для указанной зоны. nil означает UTC
func New(loc *time.Location) *Clock {
	if loc == nil {
		loc = time.UTC
	}
	return &Clock{loc: loc, now: time.Now}
}

// NewFixed часы, которые всегда показывают t (для тестов и локального запуска)
func NewFixed(t time.Time) *Clock {
	return &Clock{loc: time.UTC, now: func() time.Time { return t }}
}

// Now текущее время салона
func (c *Clock) Now() time.Time {
	local := c.now().In(c.loc)
	return time.Date(local.Year(), local.Month(), local.Day(),
		local.Hour(), local.Minute(), local.Second(), local.Nanosecond(), time.UTC)
}

// Today текущая дата салона (полночь UTC)
func (c *Clock) Today() time.Time {
	return TruncateDay(c.Now())
}

// TruncateDay отбрасывает время, оставляя дату
func TruncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
