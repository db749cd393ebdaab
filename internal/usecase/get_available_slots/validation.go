package get_available_slots

import (
	"fmt"
	"time"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

// isDateInPast проверяет, что дата раньше сегодняшней
func isDateInPast(date time.Time, today time.Time) bool {
	return truncateDay(date).Before(today)
}

// isDateTooFar проверяет ограничение maxAdvanceDays (0 - без ограничения)
func isDateTooFar(date time.Time, today time.Time, maxAdvanceDays int) bool {
	if maxAdvanceDays <= 0 {
		return false
	}
	return truncateDay(date).After(today.AddDate(0, 0, maxAdvanceDays))
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
