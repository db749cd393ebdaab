package models

import (
	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// DayOverrideResponse исключения на дату
type DayOverrideResponse struct {
	Date         string   `json:"date"`
	Blocked      bool     `json:"blocked"`
	BlockedTimes []string `json:"blockedTimes"`
	ExtraSlots   int      `json:"extraSlots"`
}

// ToggleBlockedTimeResponse результат переключения слота
type ToggleBlockedTimeResponse struct {
	Date    string `json:"date"`
	Time    string `json:"time"`
	Blocked bool   `json:"blocked"` // состояние после переключения
}

// FromDomainOverride конвертирует domain.DayOverride в ответ
func FromDomainOverride(override *domain.DayOverride) *DayOverrideResponse {
	times := make([]string, 0, len(override.BlockedTimes))
	for _, t := range override.BlockedTimes {
		times = append(times, t.String())
	}
	return &DayOverrideResponse{
		Date:         override.Date.Format(domain.DateFormat),
		Blocked:      override.Blocked,
		BlockedTimes: times,
		ExtraSlots:   override.ExtraSlots,
	}
}
