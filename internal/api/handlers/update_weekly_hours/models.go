package update_weekly_hours

import (
	"github.com/m04kA/SMC-BarberBooking/internal/service/schedule/models"
)

// UpdateWeeklyHoursRequest HTTP request model
// Дни, которых нет в запросе, не меняются
type UpdateWeeklyHoursRequest struct {
	Days []models.DayHours `json:"days"`
}
