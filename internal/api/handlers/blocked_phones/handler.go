package blocked_phones

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBooking/internal/service/phones"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidPhone       = "некорректный номер телефона"
	msgInvalidReason      = "слишком длинная причина блокировки"
	msgNotBlocked         = "номер не заблокирован"
)

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

// HandleList GET /api/v1/admin/blocked-phones
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListBlocked(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/blocked-phones - Failed to list blocked phones: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/blocked-phones - Blocked phones retrieved: count=%d", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleBlock POST /api/v1/admin/blocked-phones
// Повторная блокировка обновляет причину
func (h *Handler) HandleBlock(w http.ResponseWriter, r *http.Request) {
	var req BlockPhoneRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/blocked-phones - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.Block(r.Context(), req.Phone, req.Reason); err != nil {
		switch {
		case errors.Is(err, phones.ErrInvalidPhone):
			h.logger.Warn("POST /admin/blocked-phones - Invalid phone: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPhone)

		case errors.Is(err, phones.ErrInvalidInput):
			h.logger.Warn("POST /admin/blocked-phones - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidReason)

		default:
			h.logger.Error("POST /admin/blocked-phones - Failed to block phone: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/blocked-phones - Phone blocked")
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

// HandleUnblock DELETE /api/v1/admin/blocked-phones/{phone}
func (h *Handler) HandleUnblock(w http.ResponseWriter, r *http.Request) {
	phone := mux.Vars(r)["phone"]

	if err := h.service.Unblock(r.Context(), phone); err != nil {
		switch {
		case errors.Is(err, phones.ErrInvalidPhone):
			h.logger.Warn("DELETE /admin/blocked-phones/{phone} - Invalid phone: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPhone)

		case errors.Is(err, phones.ErrPhoneNotBlocked):
			h.logger.Warn("DELETE /admin/blocked-phones/{phone} - Phone not blocked")
			handlers.RespondNotFound(w, msgNotBlocked)

		default:
			h.logger.Error("DELETE /admin/blocked-phones/{phone} - Failed to unblock phone: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/blocked-phones/{phone} - Phone unblocked")
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
