package restore_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBooking/internal/service/bookings"
)

const (
	msgNotFound     = "запись не найдена"
	msgNotCancelled = "запись не отменена"
	msgSlotTaken    = "время этой записи уже занято другим клиентом"
	msgSlotClosed   = "день или время этой записи закрыты"
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

// Handle PATCH /api/v1/admin/bookings/{bookingId}/restore
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	booking, err := h.service.Restore(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /admin/bookings/{id}/restore - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrNotCancelled):
			h.logger.Warn("PATCH /admin/bookings/{id}/restore - Not cancelled: booking_id=%s", bookingID)
			handlers.RespondConflict(w, msgNotCancelled)

		case errors.Is(err, bookings.ErrConflict):
			h.logger.Warn("PATCH /admin/bookings/{id}/restore - Slot taken: booking_id=%s", bookingID)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, bookings.ErrSlotClosed):
			h.logger.Warn("PATCH /admin/bookings/{id}/restore - Slot closed: booking_id=%s", bookingID)
			handlers.RespondConflict(w, msgSlotClosed)

		default:
			h.logger.Error("PATCH /admin/bookings/{id}/restore - Failed to restore booking: booking_id=%s, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/bookings/{id}/restore - Booking restored successfully: booking_id=%s", bookingID)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
