package reminders

import "errors"

// ErrInternal возвращается, когда не удалось получить записи для напоминаний
var ErrInternal = errors.New("reminders: internal error")
