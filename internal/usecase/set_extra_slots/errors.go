package set_extra_slots

import "errors"

var (
	// ErrInvalidInput возвращается при значении вне диапазона или некорректном диапазоне дат
	ErrInvalidInput = errors.New("set_extra_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("set_extra_slots: internal error")
)
