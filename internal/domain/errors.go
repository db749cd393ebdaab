package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

var (
	// ErrInvalidWindow возвращается, когда начало рабочего окна не раньше конца
	ErrInvalidWindow = errors.New("domain: invalid working window")

	// ErrInvalidWeekday возвращается для неизвестного названия дня недели
	ErrInvalidWeekday = errors.New("domain: invalid weekday")

	// ErrInvalidScope возвращается для некорректного диапазона дат
	ErrInvalidScope = errors.New("domain: invalid date range scope")

	// ErrInvalidPhone возвращается, когда номер телефона не проходит проверку формата
	ErrInvalidPhone = errors.New("domain: invalid phone number")

	// ErrInvalidExtraSlots возвращается, когда значение extra slots вне диапазона
	ErrInvalidExtraSlots = errors.New("domain: extra slots out of range")
)

// ErrConflict изменение противоречит существующим активным записям
var ErrConflict = errors.New("domain: conflict with active bookings")

// ConflictError конфликт изменения расписания с активными записями на дату
type ConflictError struct {
	Date  time.Time
	Times []types.TimeString // занятые слоты, из-за которых изменение отклонено
}

func (e *ConflictError) Error() string {
	times := make([]string, 0, len(e.Times))
	for _, t := range e.Times {
		times = append(times, t.String())
	}
	return fmt.Sprintf("%v: date %s, booked times [%s]",
		ErrConflict, e.Date.Format(DateFormat), strings.Join(times, ", "))
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}
