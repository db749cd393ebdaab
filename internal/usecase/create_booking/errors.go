package create_booking

import "errors"

var (
	// ErrInvalidPhone возвращается, когда номер телефона не проходит проверку формата
	ErrInvalidPhone = errors.New("create_booking: invalid phone number")

	// ErrInvalidInput возвращается при некорректных или отсутствующих полях заявки
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrTooManyRequests возвращается, когда с номера слишком часто отправляют заявки
	ErrTooManyRequests = errors.New("create_booking: too many requests")

	// ErrPhoneBlocked возвращается, когда номер в черном списке
	ErrPhoneBlocked = errors.New("create_booking: phone is blocked")

	// ErrDuplicateSameDay возвращается, когда у номера уже есть запись на эту дату
	// (только при включенной политике "одна запись в день")
	ErrDuplicateSameDay = errors.New("create_booking: phone already has a booking on this date")

	// ErrSlotUnavailable возвращается, когда слот занят или не входит в расписание дня
	ErrSlotUnavailable = errors.New("create_booking: slot is not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// Причины отказа для метрик
const (
	rejectInvalidPhone    = "invalid_phone"
	rejectInvalidInput    = "invalid_input"
	rejectThrottled       = "throttled"
	rejectPhoneBlocked    = "phone_blocked"
	rejectDuplicateDay    = "duplicate_same_day"
	rejectSlotUnavailable = "slot_unavailable"
)
