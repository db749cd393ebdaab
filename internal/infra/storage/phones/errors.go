package phones

import "errors"

var (
	// ErrPhoneNotBlocked возвращается при снятии блокировки с незаблокированного номера
	ErrPhoneNotBlocked = errors.New("phones.repository: phone is not blocked")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("phones.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("phones.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("phones.repository: failed to scan row")
)
