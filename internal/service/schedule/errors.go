package schedule

import "errors"

var (
	// ErrInvalidWindow возвращается, когда начало окна не раньше конца или время некорректно
	ErrInvalidWindow = errors.New("schedule: invalid working window")

	// ErrInvalidWeekday возвращается для неизвестного дня недели
	ErrInvalidWeekday = errors.New("schedule: invalid weekday")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("schedule: internal error")
)
