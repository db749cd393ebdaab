package set_extra_slots

import (
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// Request модель запроса на изменение количества дополнительных слотов
type Request struct {
	Date  time.Time             // Первая дата диапазона
	Value int                   // Новое значение [-10, 10]
	Scope domain.DateRangeScope // К каким датам применить
}

// Response модель ответа
type Response struct {
	Value int
	Dates []time.Time // Даты, к которым применено значение
}
