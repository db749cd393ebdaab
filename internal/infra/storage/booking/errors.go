package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrSlotNotAvailable возвращается, когда на слот уже есть активная запись
	ErrSlotNotAvailable = errors.New("booking.repository: slot not available")

	// ErrDuplicateCode возвращается при совпадении короткого кода с существующим
	ErrDuplicateCode = errors.New("booking.repository: duplicate booking code")

	// ErrNotActive возвращается при попытке отменить неактивную запись
	ErrNotActive = errors.New("booking.repository: booking is not active")

	// ErrNotCancelled возвращается при попытке восстановить неотмененную запись
	ErrNotCancelled = errors.New("booking.repository: booking is not cancelled")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
