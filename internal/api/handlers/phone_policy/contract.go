package phone_policy

import (
	"context"

	"github.com/m04kA/SMC-BarberBooking/internal/service/phones/models"
)

type PhoneService interface {
	GetPolicy(ctx context.Context) (*models.PhonePolicyResponse, error)
	SetPolicy(ctx context.Context, limitOnePerDay bool) (*models.PhonePolicyResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
