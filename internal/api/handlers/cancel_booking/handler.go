package cancel_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBooking/internal/service/bookings"
	"github.com/m04kA/SMC-BarberBooking/internal/service/bookings/models"
)

const (
	msgInvalidCode      = "некорректный код записи"
	msgNotFound         = "запись не найдена"
	msgAlreadyCancelled = "запись уже отменена"
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

// Handle PATCH /api/v1/bookings/{code}/cancel
// Клиент отменяет запись по короткому коду
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	booking, err := h.service.CancelByCode(r.Context(), code)
	h.respond(w, "PATCH /bookings/{code}/cancel", code, booking, err)
}

// HandleByID PATCH /api/v1/admin/bookings/{bookingId}/cancel
func (h *Handler) HandleByID(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	booking, err := h.service.Cancel(r.Context(), bookingID)
	h.respond(w, "PATCH /admin/bookings/{id}/cancel", bookingID, booking, err)
}

func (h *Handler) respond(w http.ResponseWriter, route, key string, booking *models.BookingResponse, err error) {
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("%s - Invalid key: %q", route, key)
			handlers.RespondBadRequest(w, msgInvalidCode)

		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("%s - Booking not found: %s", route, key)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrAlreadyCancelled):
			h.logger.Warn("%s - Already cancelled: %s", route, key)
			handlers.RespondConflict(w, msgAlreadyCancelled)

		default:
			h.logger.Error("%s - Failed to cancel booking: %s, error=%v", route, key, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("%s - Booking cancelled successfully: booking_id=%s", route, booking.ID)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
