package create_booking_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/internal/infra/storage/memory"
	"github.com/m04kA/SMC-BarberBooking/internal/usecase/create_booking"
	"github.com/m04kA/SMC-BarberBooking/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-BarberBooking/pkg/clock"
	"github.com/m04kA/SMC-BarberBooking/pkg/logger"
	"github.com/m04kA/SMC-BarberBooking/pkg/metrics"
	"github.com/m04kA/SMC-BarberBooking/pkg/ptr"
	"github.com/m04kA/SMC-BarberBooking/pkg/txmanager"
	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

// Понедельник, 12:00-20:00 по расписанию по умолчанию
var monday = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

type mockThrottler struct {
	mock.Mock
}

func (m *mockThrottler) Allow(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

type mockTxManager struct {
	mock.Mock
}

func (m *mockTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type fixture struct {
	uc      *create_booking.UseCase
	store   *memory.Store
	metrics *metrics.Metrics
}

func setup(t *testing.T, throttler create_booking.Throttler) *fixture {
	t.Helper()

	now := monday.Add(-24 * time.Hour)
	store := memory.NewStore()
	require.NoError(t, store.Schedule().SeedDefaults(context.Background(), domain.DefaultWeeklyHours(), now))

	clk := clock.NewFixed(now)
	log := logger.NewNop()
	m := metrics.New("test", prometheus.NewRegistry())

	resolver := get_available_slots.NewUseCase(store.Schedule(), store.Overrides(), store.Bookings(), clk, log, 0)
	uc := create_booking.NewUseCase(
		store.Bookings(),
		store.Phones(),
		resolver,
		throttler,
		store.TxManager(),
		m,
		clk,
		log,
	)
	return &fixture{uc: uc, store: store, metrics: m}
}

func request(phone, startTime string) *create_booking.Request {
	return &create_booking.Request{
		Phone:        phone,
		Date:         monday,
		Time:         types.TimeString(startTime),
		Service:      "Стрижка",
		CustomerName: "Иван",
	}
}

func TestUseCase_Success(t *testing.T) {
	f := setup(t, nil)
	ctx := context.Background()

	resp, err := f.uc.Execute(ctx, request("+7 999 000-00-01", "14:00"))
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Len(t, resp.Code, domain.ShortCodeLength)
	assert.Equal(t, "+79990000001", resp.Phone)
	assert.Equal(t, types.TimeString("14:00"), resp.StartTime)
	assert.Equal(t, string(domain.StatusActive), resp.Status)
	assert.False(t, resp.HasOtherActiveBookings)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.BookingsCreatedTotal))

	stored, err := f.store.Bookings().GetByCode(ctx, resp.Code)
	require.NoError(t, err)
	assert.Equal(t, resp.ID, stored.ID)
	assert.Equal(t, "Стрижка", stored.Service)
}

func TestUseCase_UnpaddedTimeIsCanonical(t *testing.T) {
	f := setup(t, nil)
	ctx := context.Background()

	require.NoError(t, f.store.Schedule().SetDay(ctx, time.Monday, &domain.Window{
		From: types.MustTimeString("09:00"),
		To:   types.MustTimeString("20:00"),
	}, monday))

	resp, err := f.uc.Execute(ctx, request("+79990000001", "9:30"))
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("09:30"), resp.StartTime)

	stored, err := f.store.Bookings().GetByCode(ctx, resp.Code)
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("09:30"), stored.StartTime)

	conflict, err := f.store.Bookings().FindActiveConflict(ctx, monday, "09:30")
	require.NoError(t, err)
	require.NotNil(t, conflict)
	assert.Equal(t, resp.ID, conflict.ID)

	// Тот же слот в другой записи занят
	_, err = f.uc.Execute(ctx, request("+79990000002", "09:30"))
	assert.ErrorIs(t, err, create_booking.ErrSlotUnavailable)
}

func TestUseCase_SerializationRetriesExhausted(t *testing.T) {
	now := monday.Add(-24 * time.Hour)
	store := memory.NewStore()
	clk := clock.NewFixed(now)
	log := logger.NewNop()
	m := metrics.New("test", prometheus.NewRegistry())

	tx := &mockTxManager{}
	tx.On("DoSerializable", mock.Anything).
		Return(fmt.Errorf("%w: commit: %w", txmanager.ErrTransaction, &pq.Error{Code: "40001"}))

	resolver := get_available_slots.NewUseCase(store.Schedule(), store.Overrides(), store.Bookings(), clk, log, 0)
	uc := create_booking.NewUseCase(store.Bookings(), store.Phones(), resolver, nil, tx, m, clk, log)

	_, err := uc.Execute(context.Background(), request("+79990000001", "14:00"))
	assert.ErrorIs(t, err, create_booking.ErrSlotUnavailable)
	assert.NotErrorIs(t, err, create_booking.ErrInternal)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BookingsRejectedTotal.WithLabelValues("slot_unavailable")))
	tx.AssertExpectations(t)
}

func TestUseCase_SoftWarningForExistingBookings(t *testing.T) {
	f := setup(t, nil)
	ctx := context.Background()

	_, err := f.uc.Execute(ctx, request("+79990000001", "14:00"))
	require.NoError(t, err)

	next := request("+79990000001", "15:00")
	next.Date = monday.AddDate(0, 0, 1)
	resp, err := f.uc.Execute(ctx, next)
	require.NoError(t, err)
	assert.True(t, resp.HasOtherActiveBookings)
}

func TestUseCase_ValidationBeforeStore(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *create_booking.Request)
		wantErr error
	}{
		{name: "invalid phone", mutate: func(r *create_booking.Request) { r.Phone = "12" }, wantErr: create_booking.ErrInvalidPhone},
		{name: "empty phone", mutate: func(r *create_booking.Request) { r.Phone = "" }, wantErr: create_booking.ErrInvalidPhone},
		{name: "missing service", mutate: func(r *create_booking.Request) { r.Service = "  " }, wantErr: create_booking.ErrInvalidInput},
		{name: "missing name", mutate: func(r *create_booking.Request) { r.CustomerName = "" }, wantErr: create_booking.ErrInvalidInput},
		{name: "missing date", mutate: func(r *create_booking.Request) { r.Date = time.Time{} }, wantErr: create_booking.ErrInvalidInput},
		{name: "bad time", mutate: func(r *create_booking.Request) { r.Time = "25:00" }, wantErr: create_booking.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Ограничитель без ожиданий: вызов до валидации уронит тест
			throttler := &mockThrottler{}
			f := setup(t, throttler)

			req := request("+79990000001", "14:00")
			tt.mutate(req)

			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
			throttler.AssertNotCalled(t, "Allow", mock.Anything, mock.Anything)
		})
	}
}

func TestUseCase_PhoneBlocked(t *testing.T) {
	f := setup(t, nil)
	ctx := context.Background()

	require.NoError(t, f.store.Phones().Block(ctx, "+79990000001", ptr.Ptr("спам"), monday))

	_, err := f.uc.Execute(ctx, request("+7 (999) 000-00-01", "14:00"))
	assert.ErrorIs(t, err, create_booking.ErrPhoneBlocked)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.BookingsRejectedTotal.WithLabelValues("phone_blocked")))
}

func TestUseCase_DuplicateSameDay(t *testing.T) {
	f := setup(t, nil)
	ctx := context.Background()

	_, err := f.uc.Execute(ctx, request("+79990000001", "14:00"))
	require.NoError(t, err)

	// Без политики вторая запись на тот же день разрешена
	_, err = f.uc.Execute(ctx, request("+79990000001", "15:00"))
	require.NoError(t, err)

	require.NoError(t, f.store.Phones().SetPolicy(ctx, domain.PhonePolicy{LimitOnePerDayPerPhone: true}))

	_, err = f.uc.Execute(ctx, request("+79990000001", "16:00"))
	assert.ErrorIs(t, err, create_booking.ErrDuplicateSameDay)

	_, err = f.uc.Execute(ctx, request("+79990000002", "16:00"))
	assert.NoError(t, err)
}

func TestUseCase_SlotUnavailable(t *testing.T) {
	f := setup(t, nil)
	ctx := context.Background()

	_, err := f.uc.Execute(ctx, request("+79990000001", "14:00"))
	require.NoError(t, err)
	require.NoError(t, f.store.Overrides().AddBlockedTime(ctx, monday, "15:00", monday))

	tests := []struct {
		name string
		req  *create_booking.Request
	}{
		{name: "occupied", req: request("+79990000002", "14:00")},
		{name: "blocked time", req: request("+79990000002", "15:00")},
		{name: "off grid", req: request("+79990000002", "14:15")},
		{name: "after closing", req: request("+79990000002", "20:30")},
		{name: "closed weekday", req: func() *create_booking.Request {
			r := request("+79990000002", "14:00")
			r.Date = monday.AddDate(0, 0, 6)
			return r
		}()},
		{name: "past date", req: func() *create_booking.Request {
			r := request("+79990000002", "14:00")
			r.Date = monday.AddDate(0, 0, -7)
			return r
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.uc.Execute(ctx, tt.req)
			assert.ErrorIs(t, err, create_booking.ErrSlotUnavailable)
		})
	}
}

func TestUseCase_DayBlocked(t *testing.T) {
	f := setup(t, nil)
	ctx := context.Background()

	require.NoError(t, f.store.Overrides().SetBlocked(ctx, monday, true, monday))

	_, err := f.uc.Execute(ctx, request("+79990000001", "14:00"))
	assert.ErrorIs(t, err, create_booking.ErrSlotUnavailable)
}

func TestUseCase_Throttle(t *testing.T) {
	throttler := &mockThrottler{}
	throttler.On("Allow", mock.Anything, "+79990000001").Return(false, nil).Once()
	throttler.On("Allow", mock.Anything, "+79990000002").Return(false, errors.New("redis down")).Once()
	f := setup(t, throttler)
	ctx := context.Background()

	_, err := f.uc.Execute(ctx, request("+79990000001", "14:00"))
	assert.ErrorIs(t, err, create_booking.ErrTooManyRequests)

	// Недоступный ограничитель не мешает записи
	_, err = f.uc.Execute(ctx, request("+79990000002", "14:00"))
	assert.NoError(t, err)

	throttler.AssertExpectations(t)
}

func TestUseCase_NoDoubleBooking(t *testing.T) {
	f := setup(t, nil)
	ctx := context.Background()

	const clients = 50

	var (
		wg          sync.WaitGroup
		mu          sync.Mutex
		successes   int
		unavailable int
	)

	start := make(chan struct{})
	for i := 0; i < clients; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start

			_, err := f.uc.Execute(ctx, request(fmt.Sprintf("+7999100%04d", i), "17:30"))

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, create_booking.ErrSlotUnavailable):
				unavailable++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	close(start)
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, clients-1, unavailable)

	active, err := f.store.Bookings().ListActiveByDate(ctx, monday)
	require.NoError(t, err)
	assert.Len(t, active, 1)
}
