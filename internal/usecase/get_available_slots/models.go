package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	Date  time.Time // Дата (без времени)
	Phone *string   // Номер клиента (опционально, для мягкого предупреждения)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date  time.Time
	Slots []types.TimeString // По возрастанию

	// Причины пустого списка (UI показывает разные сообщения)
	DayBlocked bool // день закрыт барбером
	Closed     bool // выходной по расписанию
	Past       bool // дата в прошлом
	TooFar     bool // дата дальше окна записи

	// HasActiveBookings у номера уже есть активная запись (на любую дату)
	HasActiveBookings bool
}
