package set_extra_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

// UseCase меняет количество дополнительных слотов на одну или несколько дат
type UseCase struct {
	scheduleProvider ScheduleProvider
	overrideRepo     OverrideRepository
	bookingRepo      BookingRepository
	txManager        TransactionManager
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр usecase
func NewUseCase(
	scheduleProvider ScheduleProvider,
	overrideRepo OverrideRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		scheduleProvider: scheduleProvider,
		overrideRepo:     overrideRepo,
		bookingRepo:      bookingRepo,
		txManager:        txManager,
		timeProvider:     timeProvider,
		logger:           logger,
	}
}

// Execute применяет значение ко всем датам диапазона или ни к одной
//
// Если уменьшение убирает слот с активной записью хотя бы на одной дате,
// операция отклоняется с *domain.ConflictError по первой такой дате.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	uc.logger.Info("SetExtraSlots: date=%s, value=%d, scope=%s",
		req.Date.Format(domain.DateFormat), req.Value, req.Scope.Kind)

	// 1. Валидация значения и диапазона (до обращения к хранилищу)
	if err := domain.ValidateExtraSlots(req.Value); err != nil {
		uc.logger.Warn("SetExtraSlots: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	dates, err := req.Scope.Dates(req.Date)
	if err != nil {
		uc.logger.Warn("SetExtraSlots: invalid scope: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 2. Проверка всех дат и запись в одной транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		hours, err := uc.scheduleProvider.GetWeeklyHours(txCtx)
		if err != nil {
			uc.logger.Error("SetExtraSlots: failed to get weekly hours: %v", err)
			return fmt.Errorf("%w: Execute - get weekly hours: %w", ErrInternal, err)
		}

		// 2.1. Сначала проверяем каждую дату
		for _, date := range dates {
			if err := uc.checkDecrease(txCtx, hours.ForDate(date), date, req.Value); err != nil {
				return err
			}
		}

		// 2.2. Только после этого пишем
		now := uc.timeProvider.Now()
		for _, date := range dates {
			if err := uc.overrideRepo.SetExtraSlots(txCtx, date, req.Value, now); err != nil {
				uc.logger.Error("SetExtraSlots: failed to save date=%s: %v", date.Format(domain.DateFormat), err)
				return fmt.Errorf("%w: Execute - save: %w", ErrInternal, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("SetExtraSlots: value=%d applied to %d dates", req.Value, len(dates))

	return &Response{Value: req.Value, Dates: dates}, nil
}

// checkDecrease проверяет, что уменьшение не убирает занятые слоты даты
func (uc *UseCase) checkDecrease(ctx context.Context, window *domain.Window, date time.Time, value int) error {
	override, err := uc.overrideRepo.Get(ctx, date)
	if err != nil {
		uc.logger.Error("SetExtraSlots: failed to get override date=%s: %v", date.Format(domain.DateFormat), err)
		return fmt.Errorf("%w: Execute - get override: %w", ErrInternal, err)
	}

	if value >= override.ExtraSlots || window == nil {
		return nil
	}

	dropped := domain.DroppedSlots(window, override.ExtraSlots, value)
	if len(dropped) == 0 {
		return nil
	}

	active, err := uc.bookingRepo.ListActiveByDate(ctx, date)
	if err != nil {
		uc.logger.Error("SetExtraSlots: failed to list bookings date=%s: %v", date.Format(domain.DateFormat), err)
		return fmt.Errorf("%w: Execute - list bookings: %w", ErrInternal, err)
	}

	booked := make([]types.TimeString, 0)
	for _, b := range active {
		if domain.ContainsSlot(dropped, b.StartTime) {
			booked = append(booked, b.StartTime)
		}
	}
	if len(booked) == 0 {
		return nil
	}

	domain.SortTimes(booked)
	conflict := &domain.ConflictError{Date: date, Times: booked}
	uc.logger.Warn("SetExtraSlots: %v", conflict)
	return conflict
}
