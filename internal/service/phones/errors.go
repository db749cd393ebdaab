package phones

import "errors"

var (
	// ErrInvalidPhone возвращается при некорректном номере телефона
	ErrInvalidPhone = errors.New("phones: invalid phone number")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("phones: invalid input data")

	// ErrPhoneNotBlocked возвращается при снятии блокировки с незаблокированного номера
	ErrPhoneNotBlocked = errors.New("phones: phone is not blocked")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("phones: internal error")
)
