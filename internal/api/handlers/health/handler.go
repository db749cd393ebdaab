package health

import (
	"context"
	"net/http"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
)

const pingTimeout = 2 * time.Second

// StatusResponse HTTP response model
type StatusResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

type Handler struct {
	pingers map[string]Pinger
	logger  Logger
}

// NewHandler pingers - зависимости по имени ("database", "redis")
func NewHandler(pingers map[string]Pinger, logger Logger) *Handler {
	return &Handler{
		pingers: pingers,
		logger:  logger,
	}
}

// HandleLive GET /healthz
func (h *Handler) HandleLive(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// HandleReady GET /readyz
func (h *Handler) HandleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	status := http.StatusOK
	checks := make(map[string]string, len(h.pingers))
	for name, pinger := range h.pingers {
		if err := pinger.PingContext(ctx); err != nil {
			h.logger.Warn("GET /readyz - Dependency %s is not ready: %v", name, err)
			checks[name] = err.Error()
			status = http.StatusServiceUnavailable
			continue
		}
		checks[name] = "ok"
	}

	result := StatusResponse{Status: "ok", Checks: checks}
	if status != http.StatusOK {
		result.Status = "unavailable"
	}
	handlers.RespondJSON(w, status, result)
}
