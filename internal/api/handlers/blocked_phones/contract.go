package blocked_phones

import (
	"context"

	"github.com/m04kA/SMC-BarberBooking/internal/service/phones/models"
)

type PhoneService interface {
	Block(ctx context.Context, rawPhone string, reason *string) error
	Unblock(ctx context.Context, rawPhone string) error
	ListBlocked(ctx context.Context) (*models.BlockedPhoneListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
