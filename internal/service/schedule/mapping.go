package schedule

import (
	"fmt"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/internal/service/schedule/models"
	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

func toWindow(item models.DayHours) (*domain.Window, error) {
	if !item.Open {
		return nil, nil
	}
	if item.From == nil || item.To == nil {
		return nil, fmt.Errorf("%w: %s: from and to are required for an open day", ErrInvalidWindow, item.Weekday)
	}

	from, err := types.NewTimeStringFromString(*item.From)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidWindow, item.Weekday, err)
	}
	to, err := types.NewTimeStringFromString(*item.To)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidWindow, item.Weekday, err)
	}

	return &domain.Window{From: from, To: to}, nil
}
