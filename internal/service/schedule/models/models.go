package models

import (
	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// DayHours рабочие часы одного дня недели
type DayHours struct {
	Weekday string  `json:"weekday"` // "monday"
	Open    bool    `json:"open"`
	From    *string `json:"from,omitempty"` // "12:00"
	To      *string `json:"to,omitempty"`   // "20:00"
}

// WeeklyHoursResponse расписание на неделю, с понедельника
type WeeklyHoursResponse struct {
	Days []DayHours `json:"days"`
}

// FromDomainWeeklyHours конвертирует domain.WeeklyHours в ответ
func FromDomainWeeklyHours(hours domain.WeeklyHours) *WeeklyHoursResponse {
	days := make([]DayHours, 0, len(domain.Weekdays))
	for _, day := range domain.Weekdays {
		item := DayHours{Weekday: domain.WeekdayName(day)}
		if window := hours.For(day); window != nil {
			from, to := window.From.String(), window.To.String()
			item.Open = true
			item.From = &from
			item.To = &to
		}
		days = append(days, item)
	}
	return &WeeklyHoursResponse{Days: days}
}
