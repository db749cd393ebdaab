package models

import (
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID           string  `json:"id"`
	Code         string  `json:"code"`
	BookingDate  string  `json:"bookingDate"` // "2025-10-15"
	StartTime    string  `json:"startTime"`   // "12:30"
	Phone        string  `json:"phone"`
	CustomerName string  `json:"customerName"`
	Service      string  `json:"service"`
	Status       string  `json:"status"`
	CancelledAt  *string `json:"cancelledAt,omitempty"`
	CreatedAt    string  `json:"createdAt"`
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
	Total    int                `json:"total"`
}

// FromDomainBooking конвертирует domain.Booking в BookingResponse
func FromDomainBooking(booking *domain.Booking) *BookingResponse {
	resp := &BookingResponse{
		ID:           booking.ID,
		Code:         booking.Code,
		BookingDate:  booking.BookingDate.Format(domain.DateFormat),
		StartTime:    booking.StartTime.String(),
		Phone:        booking.Phone,
		CustomerName: booking.CustomerName,
		Service:      booking.Service,
		Status:       string(booking.Status),
		CreatedAt:    booking.CreatedAt.Format(time.RFC3339),
	}

	if booking.CancelledAt != nil {
		cancelledAt := booking.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledAt
	}

	return resp
}

// FromDomainBookings конвертирует список
func FromDomainBookings(bookings []*domain.Booking) *BookingListResponse {
	result := make([]*BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		result = append(result, FromDomainBooking(booking))
	}
	return &BookingListResponse{Bookings: result, Total: len(result)}
}
