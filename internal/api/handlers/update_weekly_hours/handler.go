package update_weekly_hours

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBooking/internal/service/schedule"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidWeekday     = "некорректный день недели"
	msgInvalidWindow      = "некорректные часы работы: начало должно быть раньше конца"
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

// Handle PUT /api/v1/admin/weekly-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpdateWeeklyHoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/weekly-hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.ApplyWeek(r.Context(), req.Days); err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidWeekday):
			h.logger.Warn("PUT /admin/weekly-hours - Invalid weekday: %v", err)
			handlers.RespondBadRequest(w, msgInvalidWeekday)

		case errors.Is(err, schedule.ErrInvalidWindow):
			h.logger.Warn("PUT /admin/weekly-hours - Invalid window: %v", err)
			handlers.RespondBadRequest(w, msgInvalidWindow)

		default:
			h.logger.Error("PUT /admin/weekly-hours - Failed to update weekly hours: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	result, err := h.service.GetWeeklyHoursView(r.Context())
	if err != nil {
		h.logger.Error("PUT /admin/weekly-hours - Failed to read updated weekly hours: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /admin/weekly-hours - Weekly hours updated: days=%d", len(req.Days))
	handlers.RespondJSON(w, http.StatusOK, result)
}
