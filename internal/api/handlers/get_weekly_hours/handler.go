package get_weekly_hours

import (
	"net/http"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/weekly-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetWeeklyHoursView(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/weekly-hours - Failed to get weekly hours: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/weekly-hours - Weekly hours retrieved successfully")
	handlers.RespondJSON(w, http.StatusOK, result)
}
