package set_extra_slots

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	setExtraSlots "github.com/m04kA/SMC-BarberBooking/internal/usecase/set_extra_slots"
)

var errUntilRequired = errors.New("until is required for this scope")

// SetExtraSlotsRequest HTTP request model
type SetExtraSlotsRequest struct {
	Value int     `json:"value"`
	Scope string  `json:"scope,omitempty"` // this_date_only | same_weekday_until | every_day_until
	Until *string `json:"until,omitempty"` // YYYY-MM-DD
}

// SetExtraSlotsResponse HTTP response model
type SetExtraSlotsResponse struct {
	Value int      `json:"value"`
	Dates []string `json:"dates"`
}

// ToUseCaseRequest конвертирует HTTP request в модель usecase
func (r *SetExtraSlotsRequest) ToUseCaseRequest(date time.Time) (*setExtraSlots.Request, error) {
	kind := domain.ScopeThisDateOnly
	if r.Scope != "" {
		parsed, err := domain.ParseScopeKind(r.Scope)
		if err != nil {
			return nil, err
		}
		kind = parsed
	}

	scope := domain.ThisDateOnly()
	if kind != domain.ScopeThisDateOnly {
		if r.Until == nil {
			return nil, errUntilRequired
		}
		until, err := handlers.ParseDate(*r.Until)
		if err != nil {
			return nil, fmt.Errorf("invalid until: %w", err)
		}
		scope = domain.DateRangeScope{Kind: kind, Until: until}
	}

	return &setExtraSlots.Request{
		Date:  date,
		Value: r.Value,
		Scope: scope,
	}, nil
}

// FromUseCaseResponse конвертирует ответ usecase в HTTP response
func FromUseCaseResponse(resp *setExtraSlots.Response) *SetExtraSlotsResponse {
	dates := make([]string, 0, len(resp.Dates))
	for _, d := range resp.Dates {
		dates = append(dates, d.Format(domain.DateFormat))
	}
	return &SetExtraSlotsResponse{Value: resp.Value, Dates: dates}
}
