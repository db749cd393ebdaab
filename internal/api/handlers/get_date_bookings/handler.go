package get_date_bookings

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBooking/internal/service/bookings/models"
)

const (
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidParams = "некорректные параметры запроса"
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

// Handle GET /api/v1/admin/days/{date}/bookings
// Query params: includeCancelled (опционально, по умолчанию false)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := mux.Vars(r)["date"]
	date, err := handlers.ParseDate(dateStr)
	if err != nil {
		h.logger.Warn("GET /admin/days/{date}/bookings - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	includeCancelled := false
	if raw := r.URL.Query().Get("includeCancelled"); raw != "" {
		includeCancelled, err = strconv.ParseBool(raw)
		if err != nil {
			h.logger.Warn("GET /admin/days/{date}/bookings - Invalid includeCancelled: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
	}

	var result *models.BookingListResponse
	if includeCancelled {
		result, err = h.service.ListByDate(r.Context(), date)
	} else {
		result, err = h.service.ListActiveByDate(r.Context(), date)
	}
	if err != nil {
		h.logger.Error("GET /admin/days/{date}/bookings - Failed to get bookings: date=%s, error=%v", dateStr, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/days/{date}/bookings - Bookings retrieved successfully: date=%s, count=%d",
		dateStr, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
