package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-BarberBooking/pkg/pgerrors"
	"github.com/m04kA/SMC-BarberBooking/pkg/shortcode"
)

// Число попыток сгенерировать уникальный короткий код
const maxCodeAttempts = 5

// UseCase use case для создания записи
type UseCase struct {
	bookingRepo  BookingRepository
	phoneRepo    PhoneRepository
	slotResolver SlotResolver
	throttler    Throttler
	txManager    TransactionManager
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// throttler может быть nil - тогда частота заявок не ограничивается
func NewUseCase(
	bookingRepo BookingRepository,
	phoneRepo PhoneRepository,
	slotResolver SlotResolver,
	throttler Throttler,
	txManager TransactionManager,
	metrics Metrics,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		phoneRepo:    phoneRepo,
		slotResolver: slotResolver,
		throttler:    throttler,
		txManager:    txManager,
		metrics:      metrics,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute выполняет use case создания записи
//
// Проверка слота перед записью нужна только для понятной ошибки.
// Окончательно конфликт решает атомарная вставка в хранилище.
func (uc *UseCase) Execute(ctx context.Context, in *Request) (*Response, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: request is required", ErrInvalidInput)
	}
	req := *in

	uc.logger.Info("CreateBooking: date=%s, time=%s", req.Date.Format(domain.DateFormat), req.Time)

	// 1. Нормализация телефона
	phone, err := domain.NormalizePhone(req.Phone)
	if err != nil {
		uc.logger.Warn("CreateBooking: invalid phone: %v", err)
		uc.metrics.IncBookingRejected(rejectInvalidPhone)
		return nil, fmt.Errorf("%w: %v", ErrInvalidPhone, err)
	}
	req.Phone = phone

	// 2. Валидация остальных полей (до обращения к хранилищу)
	if err := validateRequest(&req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		uc.metrics.IncBookingRejected(rejectInvalidInput)
		return nil, err
	}
	date := truncateDay(req.Date)

	// 3. Ограничение частоты заявок с номера
	if err := uc.checkThrottle(ctx, phone); err != nil {
		return nil, err
	}

	// 4. Черный список
	blocked, err := uc.phoneRepo.IsBlocked(ctx, phone)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to check blocked phone=%s: %v", phone, err)
		return nil, fmt.Errorf("%w: Execute - check blocked phone: %w", ErrInternal, err)
	}
	if blocked {
		uc.logger.Warn("CreateBooking: phone=%s is blocked", phone)
		uc.metrics.IncBookingRejected(rejectPhoneBlocked)
		return nil, ErrPhoneBlocked
	}

	// 5. Мягкое предупреждение: у номера уже есть активные записи
	existing, err := uc.bookingRepo.ListActiveByPhone(ctx, phone)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to list bookings for phone=%s: %v", phone, err)
		return nil, fmt.Errorf("%w: Execute - list bookings by phone: %w", ErrInternal, err)
	}
	hasOther := len(existing) > 0

	var result *domain.Booking

	// 6. Проверки и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Политика "одна запись в день на номер"
		policy, err := uc.phoneRepo.GetPolicy(txCtx)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get phone policy: %v", err)
			return fmt.Errorf("%w: Execute - get phone policy: %w", ErrInternal, err)
		}
		if policy.LimitOnePerDayPerPhone {
			dayBookings, err := uc.bookingRepo.ListActiveByDate(txCtx, date)
			if err != nil {
				uc.logger.Error("CreateBooking: failed to list bookings for date: %v", err)
				return fmt.Errorf("%w: Execute - list bookings by date: %w", ErrInternal, err)
			}
			if hasPhone(dayBookings, phone) {
				uc.logger.Warn("CreateBooking: phone=%s already booked on %s", phone, date.Format(domain.DateFormat))
				return ErrDuplicateSameDay
			}
		}

		// 6.2. Слот должен входить в текущий набор свободных слотов
		available, err := uc.slotResolver.IsSlotAvailable(txCtx, date, req.Time)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to resolve slots: %v", err)
			return fmt.Errorf("%w: Execute - resolve slots: %w", ErrInternal, err)
		}
		if !available {
			uc.logger.Warn("CreateBooking: slot %s %s is not available", date.Format(domain.DateFormat), req.Time)
			return ErrSlotUnavailable
		}

		// 6.3. Атомарная вставка
		created, err := uc.create(txCtx, &req, date)
		if err != nil {
			return err
		}

		result = created
		return nil
	})

	if err != nil {
		// Повторы транзакции исчерпаны: слот спорный, клиенту нужно выбрать другой
		if pgerrors.IsSerializationFailure(err) {
			uc.logger.Warn("CreateBooking: serialization retries exhausted for slot %s %s: %v",
				date.Format(domain.DateFormat), req.Time, err)
			uc.metrics.IncBookingRejected(rejectSlotUnavailable)
			return nil, fmt.Errorf("%w: %w", ErrSlotUnavailable, err)
		}

		switch {
		case errors.Is(err, ErrDuplicateSameDay):
			uc.metrics.IncBookingRejected(rejectDuplicateDay)
		case errors.Is(err, ErrSlotUnavailable):
			uc.metrics.IncBookingRejected(rejectSlotUnavailable)
		}
		return nil, err
	}

	uc.metrics.IncBookingCreated()
	uc.logger.Info("CreateBooking: successfully created booking id=%s code=%s", result.ID, result.Code)

	return &Response{
		ID:                     result.ID,
		Code:                   result.Code,
		BookingDate:            result.BookingDate,
		StartTime:              result.StartTime,
		Phone:                  result.Phone,
		CustomerName:           result.CustomerName,
		Service:                result.Service,
		Status:                 string(result.Status),
		CreatedAt:              result.CreatedAt,
		HasOtherActiveBookings: hasOther,
	}, nil
}

// create вставляет запись, перегенерируя код при совпадении
func (uc *UseCase) create(ctx context.Context, req *Request, date time.Time) (*domain.Booking, error) {
	for attempt := 1; attempt <= maxCodeAttempts; attempt++ {
		booking := &domain.Booking{
			ID:           uuid.NewString(),
			Code:         shortcode.Generate(domain.ShortCodeLength),
			BookingDate:  date,
			StartTime:    req.Time,
			Phone:        req.Phone,
			CustomerName: req.CustomerName,
			Service:      req.Service,
			Status:       domain.StatusActive,
			CreatedAt:    uc.timeProvider.Now(),
		}

		created, err := uc.bookingRepo.Create(ctx, booking)
		switch {
		case err == nil:
			return created, nil
		case errors.Is(err, bookingRepo.ErrDuplicateCode):
			uc.logger.Warn("CreateBooking: code collision on attempt %d", attempt)
			continue
		case errors.Is(err, bookingRepo.ErrSlotNotAvailable):
			uc.logger.Warn("CreateBooking: slot %s %s was taken concurrently", date.Format(domain.DateFormat), req.Time)
			return nil, ErrSlotUnavailable
		default:
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return nil, fmt.Errorf("%w: Execute - create booking: %w", ErrInternal, err)
		}
	}

	return nil, fmt.Errorf("%w: Execute - failed to generate unique code after %d attempts", ErrInternal, maxCodeAttempts)
}

// checkThrottle при недоступности ограничителя заявка пропускается
func (uc *UseCase) checkThrottle(ctx context.Context, phone string) error {
	if uc.throttler == nil {
		return nil
	}

	allowed, err := uc.throttler.Allow(ctx, phone)
	if err != nil {
		uc.logger.Warn("CreateBooking: throttler unavailable, skipping check: %v", err)
		return nil
	}
	if !allowed {
		uc.logger.Warn("CreateBooking: too many requests from phone=%s", phone)
		uc.metrics.IncBookingRejected(rejectThrottled)
		return ErrTooManyRequests
	}
	return nil
}

func hasPhone(bookings []*domain.Booking, phone string) bool {
	for _, b := range bookings {
		if b.Phone == phone {
			return true
		}
	}
	return false
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
