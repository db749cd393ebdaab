package phones_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBooking/internal/infra/storage/memory"
	"github.com/m04kA/SMC-BarberBooking/internal/service/phones"
	"github.com/m04kA/SMC-BarberBooking/pkg/clock"
	"github.com/m04kA/SMC-BarberBooking/pkg/logger"
	"github.com/m04kA/SMC-BarberBooking/pkg/ptr"
)

func TestService_BlockUnblock(t *testing.T) {
	store := memory.NewStore()
	svc := phones.NewService(store.Phones(), clock.NewFixed(time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)), logger.NewNop())
	ctx := context.Background()

	require.NoError(t, svc.Block(ctx, "+7 (999) 111-22-33", ptr.Ptr("  не пришел  ")))

	blocked, err := store.Phones().IsBlocked(ctx, "+79991112233")
	require.NoError(t, err)
	assert.True(t, blocked)

	list, err := svc.ListBlocked(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, list.Total)
	require.NotNil(t, list.Phones[0].Reason)
	assert.Equal(t, "не пришел", *list.Phones[0].Reason)

	assert.ErrorIs(t, svc.Block(ctx, "123", nil), phones.ErrInvalidPhone)

	require.NoError(t, svc.Unblock(ctx, "+79991112233"))
	assert.ErrorIs(t, svc.Unblock(ctx, "+79991112233"), phones.ErrPhoneNotBlocked)
}

func TestService_Policy(t *testing.T) {
	store := memory.NewStore()
	svc := phones.NewService(store.Phones(), clock.NewFixed(time.Now()), logger.NewNop())
	ctx := context.Background()

	policy, err := svc.GetPolicy(ctx)
	require.NoError(t, err)
	assert.False(t, policy.LimitOnePerDayPerPhone)

	_, err = svc.SetPolicy(ctx, true)
	require.NoError(t, err)

	policy, err = svc.GetPolicy(ctx)
	require.NoError(t, err)
	assert.True(t, policy.LimitOnePerDayPerPhone)
}
