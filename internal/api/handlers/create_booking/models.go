package create_booking

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	createBooking "github.com/m04kA/SMC-BarberBooking/internal/usecase/create_booking"
	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Phone        string `json:"phone"`
	Date         string `json:"date"` // "2025-10-15"
	Time         string `json:"time"` // "14:30"
	Service      string `json:"service"`
	CustomerName string `json:"customerName"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID                     string `json:"id"`
	Code                   string `json:"code"`
	Date                   string `json:"date"`
	Time                   string `json:"time"`
	Phone                  string `json:"phone"`
	CustomerName           string `json:"customerName"`
	Service                string `json:"service"`
	Status                 string `json:"status"`
	CreatedAt              string `json:"createdAt"`
	HasOtherActiveBookings bool   `json:"hasOtherActiveBookings"`
}

var (
	errInvalidDate = errors.New("invalid date")
	errInvalidTime = errors.New("invalid time")
)

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Пустые дата и время пропускаются дальше: use case вернет ErrInvalidInput
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	req := &createBooking.Request{
		Phone:        r.Phone,
		Service:      r.Service,
		CustomerName: r.CustomerName,
	}

	if r.Date != "" {
		date, err := handlers.ParseDate(r.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errInvalidDate, err)
		}
		req.Date = date
	}

	if r.Time != "" {
		startTime, err := types.NewTimeStringFromString(r.Time)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errInvalidTime, err)
		}
		req.Time = startTime
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:                     resp.ID,
		Code:                   resp.Code,
		Date:                   resp.BookingDate.Format(domain.DateFormat),
		Time:                   resp.StartTime.String(),
		Phone:                  resp.Phone,
		CustomerName:           resp.CustomerName,
		Service:                resp.Service,
		Status:                 resp.Status,
		CreatedAt:              resp.CreatedAt.Format(time.RFC3339),
		HasOtherActiveBookings: resp.HasOtherActiveBookings,
	}
}
