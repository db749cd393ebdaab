package get_available_slots

import (
	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-BarberBooking/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date              string   `json:"date"`
	Slots             []string `json:"slots"`
	DayBlocked        bool     `json:"dayBlocked"`
	Closed            bool     `json:"closed"`
	Past              bool     `json:"past"`
	TooFar            bool     `json:"tooFar"`
	HasActiveBookings bool     `json:"hasActiveBookings"`
}

// ToUseCaseRequest формирует запрос к use case (с парсингом даты)
func ToUseCaseRequest(dateStr, phone string) (*getAvailableSlots.Request, error) {
	date, err := handlers.ParseDate(dateStr)
	if err != nil {
		return nil, err
	}

	req := &getAvailableSlots.Request{Date: date}
	if phone != "" {
		req.Phone = &phone
	}
	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]string, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, s.String())
	}

	return &AvailableSlotsResponse{
		Date:              resp.Date.Format(domain.DateFormat),
		Slots:             slots,
		DayBlocked:        resp.DayBlocked,
		Closed:            resp.Closed,
		Past:              resp.Past,
		TooFar:            resp.TooFar,
		HasActiveBookings: resp.HasActiveBookings,
	}
}
