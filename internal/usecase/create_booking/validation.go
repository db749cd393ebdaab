package create_booking

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

// validateRequest проверяет обязательные поля до обращения к хранилищу
// Поля Service и CustomerName обрезаются от пробелов, время приводится к виду "HH:MM"
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Time.IsZero() {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}
	canonical, err := types.NewTimeStringFromString(string(req.Time))
	if err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}
	req.Time = canonical

	req.Service = strings.TrimSpace(req.Service)
	if req.Service == "" {
		return fmt.Errorf("%w: service is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(req.Service) > domain.MaxServiceLen {
		return fmt.Errorf("%w: service must not exceed %d characters", ErrInvalidInput, domain.MaxServiceLen)
	}

	req.CustomerName = strings.TrimSpace(req.CustomerName)
	if req.CustomerName == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(req.CustomerName) > domain.MaxCustomerNameLen {
		return fmt.Errorf("%w: customer name must not exceed %d characters", ErrInvalidInput, domain.MaxCustomerNameLen)
	}

	return nil
}
