package update_day

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/internal/service/overrides"
	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

const (
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTime        = "некорректное время, ожидается HH:MM"
	msgDayHasBookings     = "на этот день есть активные записи, сначала отмените их"
	msgSlotHasBooking     = "на это время есть активная запись"
)

type Handler struct {
	service OverrideService
	logger  Logger
}

func NewHandler(service OverrideService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleBlocked PUT /api/v1/admin/days/{date}/blocked
func (h *Handler) HandleBlocked(w http.ResponseWriter, r *http.Request) {
	date, ok := h.parseDate(w, r, "PUT /admin/days/{date}/blocked")
	if !ok {
		return
	}

	var req SetDayBlockedRequest
	if err := handlers.DecodeJSON(r, &req); err != nil || req.Blocked == nil {
		h.logger.Warn("PUT /admin/days/{date}/blocked - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.SetDayBlocked(r.Context(), date, *req.Blocked); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			h.logger.Warn("PUT /admin/days/{date}/blocked - Conflict: %v", err)
			handlers.RespondScheduleConflict(w, msgDayHasBookings, err)
			return
		}
		h.logger.Error("PUT /admin/days/{date}/blocked - Failed to update day: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	result, err := h.service.GetDay(r.Context(), date)
	if err != nil {
		h.logger.Error("PUT /admin/days/{date}/blocked - Failed to read day: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /admin/days/{date}/blocked - Day updated: date=%s, blocked=%t",
		result.Date, result.Blocked)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleToggleTime POST /api/v1/admin/days/{date}/blocked-times
func (h *Handler) HandleToggleTime(w http.ResponseWriter, r *http.Request) {
	date, ok := h.parseDate(w, r, "POST /admin/days/{date}/blocked-times")
	if !ok {
		return
	}

	var req ToggleBlockedTimeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/days/{date}/blocked-times - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	slot, err := types.NewTimeStringFromString(req.Time)
	if err != nil {
		h.logger.Warn("POST /admin/days/{date}/blocked-times - Invalid time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.service.ToggleBlockedTime(r.Context(), date, slot)
	if err != nil {
		switch {
		case errors.Is(err, overrides.ErrInvalidInput):
			h.logger.Warn("POST /admin/days/{date}/blocked-times - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTime)

		case errors.Is(err, domain.ErrConflict):
			h.logger.Warn("POST /admin/days/{date}/blocked-times - Conflict: %v", err)
			handlers.RespondScheduleConflict(w, msgSlotHasBooking, err)

		default:
			h.logger.Error("POST /admin/days/{date}/blocked-times - Failed to toggle time: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/days/{date}/blocked-times - Time toggled: date=%s, time=%s, blocked=%t",
		result.Date, result.Time, result.Blocked)
	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) parseDate(w http.ResponseWriter, r *http.Request, route string) (time.Time, bool) {
	date, err := handlers.ParseDate(mux.Vars(r)["date"])
	if err != nil {
		h.logger.Warn("%s - Invalid date: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return time.Time{}, false
	}
	return date, true
}
