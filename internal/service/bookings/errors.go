package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("bookings: booking not found")

	// ErrInvalidPhone возвращается при некорректном номере телефона
	ErrInvalidPhone = errors.New("bookings: invalid phone number")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("bookings: invalid input data")

	// ErrAlreadyCancelled возвращается при повторной отмене
	ErrAlreadyCancelled = errors.New("bookings: booking is already cancelled")

	// ErrNotCancelled возвращается при восстановлении активной записи
	ErrNotCancelled = errors.New("bookings: booking is not cancelled")

	// ErrConflict возвращается, когда слот восстанавливаемой записи уже занят
	ErrConflict = errors.New("bookings: slot is taken by another active booking")

	// ErrSlotClosed возвращается, когда день или время восстанавливаемой записи закрыты
	ErrSlotClosed = errors.New("bookings: day or time of the booking is blocked")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings: internal error")
)
