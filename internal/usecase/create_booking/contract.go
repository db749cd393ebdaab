package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	ListActiveByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error)
	ListActiveByPhone(ctx context.Context, phone string) ([]*domain.Booking, error)
}

// PhoneRepository интерфейс хранилища заблокированных номеров и политики
type PhoneRepository interface {
	IsBlocked(ctx context.Context, phone string) (bool, error)
	GetPolicy(ctx context.Context) (*domain.PhonePolicy, error)
}

// SlotResolver проверяет, что время входит в текущий набор свободных слотов
type SlotResolver interface {
	IsSlotAvailable(ctx context.Context, date time.Time, slot types.TimeString) (bool, error)
}

// Throttler ограничивает частоту отправки заявок с одного номера
type Throttler interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics счетчики созданных и отклоненных заявок
type Metrics interface {
	IncBookingCreated()
	IncBookingRejected(reason string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
