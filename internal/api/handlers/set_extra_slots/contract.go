package set_extra_slots

import (
	"context"

	setExtraSlots "github.com/m04kA/SMC-BarberBooking/internal/usecase/set_extra_slots"
)

type UseCase interface {
	Execute(ctx context.Context, req *setExtraSlots.Request) (*setExtraSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
