package reminders_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/internal/infra/storage/memory"
	"github.com/m04kA/SMC-BarberBooking/internal/service/reminders"
	"github.com/m04kA/SMC-BarberBooking/pkg/logger"
	"github.com/m04kA/SMC-BarberBooking/pkg/metrics"
	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) SendReminder(ctx context.Context, kind domain.ReminderKind, booking *domain.Booking) error {
	args := m.Called(ctx, kind, booking)
	return args.Error(0)
}

type movableClock struct {
	now time.Time
}

func (c *movableClock) Now() time.Time { return c.now }

var day = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

func TestService_SweepSendsClosestReminderOnly(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	_, err := store.Bookings().Create(ctx, &domain.Booking{
		ID:          "b1",
		Code:        "abc12345",
		BookingDate: day,
		StartTime:   types.MustTimeString("12:00"),
		Phone:       "+79990000001",
		CreatedAt:   day.Add(10 * time.Hour),
	})
	require.NoError(t, err)

	notifier := new(mockNotifier)
	notifier.On("SendReminder", mock.Anything, domain.ReminderH2, mock.Anything).Return(nil).Once()
	notifier.On("SendReminder", mock.Anything, domain.ReminderM30, mock.Anything).Return(nil).Once()

	m := metrics.New("test", prometheus.NewRegistry())
	clk := &movableClock{now: day.Add(11 * time.Hour)}
	svc := reminders.NewService(store.Bookings(), notifier, m, clk, logger.NewNop())

	sent, err := svc.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, sent)

	clk.now = day.Add(11*time.Hour + 45*time.Minute)
	sent, err = svc.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, sent)

	sent, err = svc.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, sent)

	notifier.AssertExpectations(t)
	notifier.AssertNotCalled(t, "SendReminder", mock.Anything, domain.ReminderH24, mock.Anything)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RemindersSentTotal.WithLabelValues("2h")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RemindersSentTotal.WithLabelValues("30m")))

	booking, err := store.Bookings().GetByID(ctx, "b1")
	require.NoError(t, err)
	assert.NotNil(t, booking.Reminder24hSentAt)
}

func TestService_SweepNotifierFailureIsNotRetried(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	_, err := store.Bookings().Create(ctx, &domain.Booking{
		ID:          "b1",
		Code:        "abc12345",
		BookingDate: day.AddDate(0, 0, 1),
		StartTime:   types.MustTimeString("09:00"),
		Phone:       "+79990000001",
	})
	require.NoError(t, err)

	notifier := new(mockNotifier)
	notifier.On("SendReminder", mock.Anything, domain.ReminderH24, mock.Anything).Return(errors.New("smtp down")).Once()

	svc := reminders.NewService(store.Bookings(), notifier, (*metrics.Metrics)(nil), &movableClock{now: day.Add(12 * time.Hour)}, logger.NewNop())

	sent, err := svc.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, sent)

	sent, err = svc.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, sent)

	notifier.AssertExpectations(t)
}
