package models

import (
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

type BlockedPhoneResponse struct {
	Phone     string  `json:"phone"`
	Reason    *string `json:"reason,omitempty"`
	CreatedAt string  `json:"createdAt"`
}

type BlockedPhoneListResponse struct {
	Phones []*BlockedPhoneResponse `json:"phones"`
	Total  int                     `json:"total"`
}

type PhonePolicyResponse struct {
	LimitOnePerDayPerPhone bool `json:"limitOnePerDayPerPhone"`
}

func FromDomainBlockedPhones(phones []*domain.BlockedPhone) *BlockedPhoneListResponse {
	result := make([]*BlockedPhoneResponse, 0, len(phones))
	for _, p := range phones {
		result = append(result, &BlockedPhoneResponse{
			Phone:     p.Phone,
			Reason:    p.Reason,
			CreatedAt: p.CreatedAt.Format(time.RFC3339),
		})
	}
	return &BlockedPhoneListResponse{Phones: result, Total: len(result)}
}
