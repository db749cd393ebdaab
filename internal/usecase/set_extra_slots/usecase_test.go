package set_extra_slots_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/internal/infra/storage/memory"
	"github.com/m04kA/SMC-BarberBooking/internal/usecase/set_extra_slots"
	"github.com/m04kA/SMC-BarberBooking/pkg/clock"
	"github.com/m04kA/SMC-BarberBooking/pkg/logger"
	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

var monday = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

func setup(t *testing.T) (*set_extra_slots.UseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	require.NoError(t, store.Schedule().SeedDefaults(context.Background(), domain.DefaultWeeklyHours(), monday))

	uc := set_extra_slots.NewUseCase(
		store.Schedule(),
		store.Overrides(),
		store.Bookings(),
		store.TxManager(),
		clock.NewFixed(monday),
		logger.NewNop(),
	)
	return uc, store
}

func book(t *testing.T, store *memory.Store, date time.Time, startTime string) {
	t.Helper()
	_, err := store.Bookings().Create(context.Background(), &domain.Booking{
		ID:          uuid.NewString(),
		Code:        uuid.NewString()[:8],
		BookingDate: date,
		StartTime:   types.MustTimeString(startTime),
		Phone:       "+79990000001",
		CreatedAt:   monday,
	})
	require.NoError(t, err)
}

func extraSlots(t *testing.T, store *memory.Store, date time.Time) int {
	t.Helper()
	override, err := store.Overrides().Get(context.Background(), date)
	require.NoError(t, err)
	return override.ExtraSlots
}

func TestUseCase_Scopes(t *testing.T) {
	tests := []struct {
		name      string
		scope     domain.DateRangeScope
		wantDates int
		touched   []time.Time
		untouched []time.Time
	}{
		{
			name:      "this date only",
			scope:     domain.ThisDateOnly(),
			wantDates: 1,
			touched:   []time.Time{monday},
			untouched: []time.Time{monday.AddDate(0, 0, 1)},
		},
		{
			name:      "same weekday",
			scope:     domain.SameWeekdayUntil(monday.AddDate(0, 0, 20)),
			wantDates: 3,
			touched:   []time.Time{monday, monday.AddDate(0, 0, 7), monday.AddDate(0, 0, 14)},
			untouched: []time.Time{monday.AddDate(0, 0, 1), monday.AddDate(0, 0, 21)},
		},
		{
			name:      "every day",
			scope:     domain.EveryDayUntil(monday.AddDate(0, 0, 6)),
			wantDates: 7,
			touched:   []time.Time{monday, monday.AddDate(0, 0, 3), monday.AddDate(0, 0, 6)},
			untouched: []time.Time{monday.AddDate(0, 0, 7)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, store := setup(t)

			resp, err := uc.Execute(context.Background(), &set_extra_slots.Request{Date: monday, Value: 2, Scope: tt.scope})
			require.NoError(t, err)
			assert.Len(t, resp.Dates, tt.wantDates)

			for _, d := range tt.touched {
				assert.Equal(t, 2, extraSlots(t, store, d), d.Format(domain.DateFormat))
			}
			for _, d := range tt.untouched {
				assert.Equal(t, 0, extraSlots(t, store, d), d.Format(domain.DateFormat))
			}
		})
	}
}

func TestUseCase_DecreaseGuard(t *testing.T) {
	uc, store := setup(t)
	ctx := context.Background()

	secondMonday := monday.AddDate(0, 0, 7)
	book(t, store, secondMonday, "20:00")

	_, err := uc.Execute(ctx, &set_extra_slots.Request{
		Date:  monday,
		Value: -1,
		Scope: domain.SameWeekdayUntil(monday.AddDate(0, 0, 14)),
	})

	var conflict *domain.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, secondMonday, conflict.Date)
	assert.Equal(t, []types.TimeString{"20:00"}, conflict.Times)

	// Ни одна дата диапазона не изменилась
	for _, d := range []time.Time{monday, secondMonday, monday.AddDate(0, 0, 14)} {
		assert.Equal(t, 0, extraSlots(t, store, d))
	}
}

func TestUseCase_DecreaseWithinExtraSlots(t *testing.T) {
	uc, store := setup(t)
	ctx := context.Background()

	_, err := uc.Execute(ctx, &set_extra_slots.Request{Date: monday, Value: 3, Scope: domain.ThisDateOnly()})
	require.NoError(t, err)
	book(t, store, monday, "21:00")

	// 21:00 остается при значении 2
	_, err = uc.Execute(ctx, &set_extra_slots.Request{Date: monday, Value: 2, Scope: domain.ThisDateOnly()})
	require.NoError(t, err)

	_, err = uc.Execute(ctx, &set_extra_slots.Request{Date: monday, Value: 1, Scope: domain.ThisDateOnly()})
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, 2, extraSlots(t, store, monday))
}

func TestUseCase_CancelledBookingDoesNotBlockDecrease(t *testing.T) {
	uc, store := setup(t)
	ctx := context.Background()

	book(t, store, monday, "20:00")
	active, err := store.Bookings().ListActiveByDate(ctx, monday)
	require.NoError(t, err)
	require.NoError(t, store.Bookings().Cancel(ctx, active[0].ID, monday))

	_, err = uc.Execute(ctx, &set_extra_slots.Request{Date: monday, Value: -2, Scope: domain.ThisDateOnly()})
	require.NoError(t, err)
	assert.Equal(t, -2, extraSlots(t, store, monday))
}

func TestUseCase_InvalidInput(t *testing.T) {
	uc, store := setup(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  *set_extra_slots.Request
	}{
		{name: "above range", req: &set_extra_slots.Request{Date: monday, Value: 11, Scope: domain.ThisDateOnly()}},
		{name: "below range", req: &set_extra_slots.Request{Date: monday, Value: -11, Scope: domain.ThisDateOnly()}},
		{name: "end before start", req: &set_extra_slots.Request{Date: monday, Value: 1, Scope: domain.EveryDayUntil(monday.AddDate(0, 0, -1))}},
		{name: "too long range", req: &set_extra_slots.Request{Date: monday, Value: 1, Scope: domain.EveryDayUntil(monday.AddDate(2, 0, 0))}},
		{name: "missing date", req: &set_extra_slots.Request{Value: 1, Scope: domain.ThisDateOnly()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(ctx, tt.req)
			assert.ErrorIs(t, err, set_extra_slots.ErrInvalidInput)
		})
	}

	assert.Equal(t, 0, extraSlots(t, store, monday))
}
