package get_phone_bookings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBooking/internal/service/bookings"
)

const (
	msgInvalidPhone = "некорректный номер телефона"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/phones/{phone}/bookings
// Тот же обработчик используется в панели: /api/v1/admin/phones/{phone}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	phone := mux.Vars(r)["phone"]

	result, err := h.service.ListActiveByPhone(r.Context(), phone)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidPhone):
			h.logger.Warn("GET /phones/{phone}/bookings - Invalid phone: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPhone)

		default:
			h.logger.Error("GET /phones/{phone}/bookings - Failed to get bookings: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /phones/{phone}/bookings - Bookings retrieved successfully: count=%d", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
