package purge_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBooking/internal/service/bookings"
)

const (
	msgInvalidGrace = "некорректное значение graceMinutes"
)

// PurgeResponse HTTP response model
type PurgeResponse struct {
	Purged       int64 `json:"purged"`
	GraceMinutes int   `json:"graceMinutes"`
}

type Handler struct {
	service             BookingService
	defaultGraceMinutes int
	logger              Logger
}

// NewHandler defaultGraceMinutes используется, если graceMinutes не передан
func NewHandler(service BookingService, defaultGraceMinutes int, logger Logger) *Handler {
	return &Handler{
		service:             service,
		defaultGraceMinutes: defaultGraceMinutes,
		logger:              logger,
	}
}

// Handle POST /api/v1/admin/bookings/purge
// Query params: graceMinutes (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	grace := h.defaultGraceMinutes
	if raw := r.URL.Query().Get("graceMinutes"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("POST /admin/bookings/purge - Invalid graceMinutes: %v", err)
			handlers.RespondBadRequest(w, msgInvalidGrace)
			return
		}
		grace = parsed
	}

	purged, err := h.service.PurgeExpired(r.Context(), grace)
	if err != nil {
		if errors.Is(err, bookings.ErrInvalidInput) {
			h.logger.Warn("POST /admin/bookings/purge - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidGrace)
			return
		}
		h.logger.Error("POST /admin/bookings/purge - Failed to purge: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /admin/bookings/purge - Purged %d bookings", purged)
	handlers.RespondJSON(w, http.StatusOK, PurgeResponse{Purged: purged, GraceMinutes: grace})
}
