package set_extra_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	setExtraSlots "github.com/m04kA/SMC-BarberBooking/internal/usecase/set_extra_slots"
)

const (
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректное значение или диапазон дат"
	msgSlotsHaveBookings  = "уменьшение убирает слоты с активными записями"
)

type Handler struct {
	useCase UseCase
	logger  Logger
}

func NewHandler(useCase UseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/admin/days/{date}/extra-slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date, err := handlers.ParseDate(mux.Vars(r)["date"])
	if err != nil {
		h.logger.Warn("PUT /admin/days/{date}/extra-slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	var req SetExtraSlotsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/days/{date}/extra-slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	ucReq, err := req.ToUseCaseRequest(date)
	if err != nil {
		h.logger.Warn("PUT /admin/days/{date}/extra-slots - Invalid scope: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInput)
		return
	}

	result, err := h.useCase.Execute(r.Context(), ucReq)
	if err != nil {
		switch {
		case errors.Is(err, setExtraSlots.ErrInvalidInput):
			h.logger.Warn("PUT /admin/days/{date}/extra-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, domain.ErrConflict):
			h.logger.Warn("PUT /admin/days/{date}/extra-slots - Conflict: %v", err)
			handlers.RespondScheduleConflict(w, msgSlotsHaveBookings, err)

		default:
			h.logger.Error("PUT /admin/days/{date}/extra-slots - Failed to set extra slots: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/days/{date}/extra-slots - Extra slots set: value=%d, dates=%d",
		result.Value, len(result.Dates))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
