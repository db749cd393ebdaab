package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

// UseCase вычисляет свободные слоты на дату
//
// Порядок проверок: прошлое, окно записи, закрытый день, выходной.
// Дальше сетка слотов с учетом доп. слотов минус занятые и скрытые.
type UseCase struct {
	scheduleProvider ScheduleProvider
	overrideRepo     OverrideRepository
	bookingRepo      BookingRepository
	timeProvider     TimeProvider
	logger           Logger
	maxAdvanceDays   int
}

// NewUseCase создает новый экземпляр usecase
// maxAdvanceDays ограничивает запись вперед (0 - без ограничения)
func NewUseCase(
	scheduleProvider ScheduleProvider,
	overrideRepo OverrideRepository,
	bookingRepo BookingRepository,
	timeProvider TimeProvider,
	logger Logger,
	maxAdvanceDays int,
) *UseCase {
	return &UseCase{
		scheduleProvider: scheduleProvider,
		overrideRepo:     overrideRepo,
		bookingRepo:      bookingRepo,
		timeProvider:     timeProvider,
		logger:           logger,
		maxAdvanceDays:   maxAdvanceDays,
	}
}

// Execute возвращает отсортированный список свободных слотов на дату
// Чистое чтение: повторный вызов без изменений данных дает тот же результат
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("Execute: validation failed: %v", err)
		return nil, err
	}

	date := truncateDay(req.Date)
	resp := &Response{Date: date, Slots: []types.TimeString{}}

	// 2. Мягкое предупреждение об уже существующих записях номера
	if req.Phone != nil && *req.Phone != "" {
		phone, err := domain.NormalizePhone(*req.Phone)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPhone, err)
		}

		existing, err := uc.bookingRepo.ListActiveByPhone(ctx, phone)
		if err != nil {
			uc.logger.Error("Execute: failed to list bookings for phone=%s: %v", phone, err)
			return nil, fmt.Errorf("%w: Execute - list bookings by phone: %w", ErrInternal, err)
		}
		resp.HasActiveBookings = len(existing) > 0
	}

	now := uc.timeProvider.Now()
	today := truncateDay(now)

	// 3. Прошедшие даты и даты за пределами окна записи
	if isDateInPast(date, today) {
		resp.Past = true
		return resp, nil
	}
	if isDateTooFar(date, today, uc.maxAdvanceDays) {
		resp.TooFar = true
		return resp, nil
	}

	// 4. День закрыт барбером
	override, err := uc.overrideRepo.Get(ctx, date)
	if err != nil {
		uc.logger.Error("Execute: failed to get override for date=%s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: Execute - get override: %w", ErrInternal, err)
	}
	if override.Blocked {
		resp.DayBlocked = true
		return resp, nil
	}

	// 5. Рабочее окно дня недели
	hours, err := uc.scheduleProvider.GetWeeklyHours(ctx)
	if err != nil {
		uc.logger.Error("Execute: failed to get weekly hours: %v", err)
		return nil, fmt.Errorf("%w: Execute - get weekly hours: %w", ErrInternal, err)
	}
	window := hours.ForDate(date)
	if window == nil {
		resp.Closed = true
		return resp, nil
	}

	// 6. Сетка слотов и занятые слоты
	base := domain.GenerateSlots(window, override.ExtraSlots)

	bookings, err := uc.bookingRepo.ListActiveByDate(ctx, date)
	if err != nil {
		uc.logger.Error("Execute: failed to list bookings for date=%s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: Execute - list bookings: %w", ErrInternal, err)
	}

	// 7. Вычитание занятых и скрытых слотов, отсечение прошедших на сегодня
	resp.Slots = availableSlots(base, bookings, override.BlockedTimes, date, now)

	return resp, nil
}

// IsSlotAvailable проверяет, что время входит в список свободных слотов даты
func (uc *UseCase) IsSlotAvailable(ctx context.Context, date time.Time, slot types.TimeString) (bool, error) {
	resp, err := uc.Execute(ctx, &Request{Date: date})
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			return false, nil
		}
		return false, err
	}
	return domain.ContainsSlot(resp.Slots, slot), nil
}
