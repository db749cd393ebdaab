package phone_policy

import (
	"net/http"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
)

// UpdatePolicyRequest HTTP request model
type UpdatePolicyRequest struct {
	LimitOnePerDayPerPhone *bool `json:"limitOnePerDayPerPhone"`
}

type Handler struct {
	service PhoneService
	logger  Logger
}

func NewHandler(service PhoneService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleGet GET /api/v1/admin/phone-policy
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetPolicy(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/phone-policy - Failed to get policy: %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleUpdate PUT /api/v1/admin/phone-policy
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req UpdatePolicyRequest
	if err := handlers.DecodeJSON(r, &req); err != nil || req.LimitOnePerDayPerPhone == nil {
		h.logger.Warn("PUT /admin/phone-policy - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.SetPolicy(r.Context(), *req.LimitOnePerDayPerPhone)
	if err != nil {
		h.logger.Error("PUT /admin/phone-policy - Failed to update policy: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /admin/phone-policy - Policy updated: limitOnePerDayPerPhone=%t", result.LimitOnePerDayPerPhone)
	handlers.RespondJSON(w, http.StatusOK, result)
}
