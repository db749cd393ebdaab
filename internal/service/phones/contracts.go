package phones

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// PhoneRepository черный список и политика по телефонам
type PhoneRepository interface {
	Block(ctx context.Context, phone string, reason *string, at time.Time) error
	Unblock(ctx context.Context, phone string) error
	ListBlocked(ctx context.Context) ([]*domain.BlockedPhone, error)
	GetPolicy(ctx context.Context) (*domain.PhonePolicy, error)
	SetPolicy(ctx context.Context, policy domain.PhonePolicy) error
}

type TimeProvider interface {
	Now() time.Time
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
