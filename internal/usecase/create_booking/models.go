package create_booking

import (
	"time"

	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

// Request модель заявки на запись
type Request struct {
	Phone        string           // Номер в любом допустимом виде, нормализуется
	Date         time.Time        // Дата записи (без времени)
	Time         types.TimeString // Время начала слота, например "14:30"
	Service      string           // Услуга
	CustomerName string           // Имя клиента
}

// Response модель ответа с созданной записью
type Response struct {
	ID           string
	Code         string // Короткий код для поиска и отмены записи клиентом
	BookingDate  time.Time
	StartTime    types.TimeString
	Phone        string
	CustomerName string
	Service      string
	Status       string
	CreatedAt    time.Time

	// HasOtherActiveBookings у номера уже была активная запись до этой заявки
	HasOtherActiveBookings bool
}
