package domain

import (
	"time"

	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

// BookingStatus статус бронирования
type BookingStatus string

const (
	StatusActive    BookingStatus = "active"
	StatusCancelled BookingStatus = "cancelled"
)

// Valid проверяет, что статус известен
func (s BookingStatus) Valid() bool {
	return s == StatusActive || s == StatusCancelled
}

// Booking запись клиента к барберу
type Booking struct {
	ID           string // uuid
	Code         string // короткий код для клиента (поиск и отмена)
	BookingDate  time.Time
	StartTime    types.TimeString
	Phone        string // нормализованный номер
	CustomerName string
	Service      string
	Status       BookingStatus

	CancelledAt *time.Time

	// Отметки об отправленных напоминаниях
	Reminder24hSentAt *time.Time
	Reminder2hSentAt  *time.Time
	Reminder30mSentAt *time.Time

	CreatedAt time.Time
}

// IsActive returns true if the booking occupies its slot
func (b *Booking) IsActive() bool {
	return b.Status == StatusActive
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// StartsAt момент начала приема (настенное время салона)
func (b *Booking) StartsAt() time.Time {
	return b.StartTime.OnDate(b.BookingDate)
}

// ReminderSentAt возвращает отметку для напоминания указанного вида
func (b *Booking) ReminderSentAt(kind ReminderKind) *time.Time {
	switch kind {
	case ReminderH24:
		return b.Reminder24hSentAt
	case ReminderH2:
		return b.Reminder2hSentAt
	case ReminderM30:
		return b.Reminder30mSentAt
	}
	return nil
}
