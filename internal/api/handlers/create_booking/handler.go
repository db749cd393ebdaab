package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-BarberBooking/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты записи, ожидается YYYY-MM-DD"
	msgInvalidTime        = "некорректный формат времени, ожидается HH:MM"
	msgInvalidPhone       = "некорректный номер телефона"
	msgInvalidInput       = "заполните дату, время, услугу и имя"
	msgTooManyRequests    = "слишком много заявок, попробуйте позже"
	msgPhoneBlocked       = "запись с этого номера недоступна, свяжитесь с мастером"
	msgDuplicateSameDay   = "у вас уже есть запись на этот день"
	msgSlotUnavailable    = "выбранное время недоступно, выберите другое"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		if errors.Is(err, errInvalidTime) {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidPhone):
			h.logger.Warn("POST /bookings - Invalid phone: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPhone)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrTooManyRequests):
			h.logger.Warn("POST /bookings - Too many requests: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondTooManyRequests(w, msgTooManyRequests)

		case errors.Is(err, createBooking.ErrPhoneBlocked):
			h.logger.Warn("POST /bookings - Phone blocked: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondForbidden(w, msgPhoneBlocked)

		case errors.Is(err, createBooking.ErrDuplicateSameDay):
			h.logger.Warn("POST /bookings - Duplicate same day: date=%s", req.Date)
			handlers.RespondConflict(w, msgDuplicateSameDay)

		case errors.Is(err, createBooking.ErrSlotUnavailable):
			h.logger.Warn("POST /bookings - Slot unavailable: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondConflict(w, msgSlotUnavailable)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: date=%s, time=%s, error=%v",
				req.Date, req.Time, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, date=%s, time=%s",
		result.ID, req.Date, req.Time)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
