package overrides

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/internal/service/overrides/models"
	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

// Service исключения расписания по датам: блокировка дня и отдельных слотов
//
// Изменения, которые могут противоречить записям, выполняются в
// сериализуемой транзакции вместе с проверкой. Конфликт возвращается
// как *domain.ConflictError.
type Service struct {
	overrideRepo OverrideRepository
	bookingRepo  BookingRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

func NewService(
	overrideRepo OverrideRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		overrideRepo: overrideRepo,
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetDay все исключения на дату
func (s *Service) GetDay(ctx context.Context, date time.Time) (*models.DayOverrideResponse, error) {
	override, err := s.get(ctx, "GetDay", date)
	if err != nil {
		return nil, err
	}
	return models.FromDomainOverride(override), nil
}

// IsDayBlocked закрыт ли день целиком
func (s *Service) IsDayBlocked(ctx context.Context, date time.Time) (bool, error) {
	override, err := s.get(ctx, "IsDayBlocked", date)
	if err != nil {
		return false, err
	}
	return override.Blocked, nil
}

// GetBlockedTimes вручную скрытые слоты
func (s *Service) GetBlockedTimes(ctx context.Context, date time.Time) ([]types.TimeString, error) {
	times, err := s.overrideRepo.ListBlockedTimes(ctx, date)
	if err != nil {
		s.logger.Error("GetBlockedTimes: repository error for date=%s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: GetBlockedTimes - repository error: %w", ErrInternal, err)
	}
	return times, nil
}

// GetExtraSlots количество дополнительных слотов на дату
func (s *Service) GetExtraSlots(ctx context.Context, date time.Time) (int, error) {
	override, err := s.get(ctx, "GetExtraSlots", date)
	if err != nil {
		return 0, err
	}
	return override.ExtraSlots, nil
}

// SetDayBlocked закрывает или открывает день
// Закрыть день с активными записями нельзя
func (s *Service) SetDayBlocked(ctx context.Context, date time.Time, blocked bool) error {
	s.logger.Info("SetDayBlocked: date=%s, blocked=%t", date.Format(domain.DateFormat), blocked)

	return s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. При закрытии проверяем, что на дату нет активных записей
		if blocked {
			active, err := s.bookingRepo.ListActiveByDate(txCtx, date)
			if err != nil {
				s.logger.Error("SetDayBlocked: failed to list bookings: %v", err)
				return fmt.Errorf("%w: SetDayBlocked - list bookings: %w", ErrInternal, err)
			}

			if len(active) > 0 {
				conflict := &domain.ConflictError{Date: date, Times: bookingTimes(active)}
				s.logger.Warn("SetDayBlocked: %v", conflict)
				return conflict
			}
		}

		// 2. Сохраняем флаг
		if err := s.overrideRepo.SetBlocked(txCtx, date, blocked, s.timeProvider.Now()); err != nil {
			s.logger.Error("SetDayBlocked: failed to save: %v", err)
			return fmt.Errorf("%w: SetDayBlocked - save: %w", ErrInternal, err)
		}
		return nil
	})
}

// ToggleBlockedTime скрывает слот или возвращает скрытый
// Скрыть слот с активной записью нельзя
func (s *Service) ToggleBlockedTime(ctx context.Context, date time.Time, slot types.TimeString) (*models.ToggleBlockedTimeResponse, error) {
	slot, err := types.NewTimeStringFromString(string(slot))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	s.logger.Info("ToggleBlockedTime: date=%s, time=%s", date.Format(domain.DateFormat), slot)

	var nowBlocked bool
	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Если слот уже скрыт - просто возвращаем его
		removed, err := s.overrideRepo.RemoveBlockedTime(txCtx, date, slot)
		if err != nil {
			s.logger.Error("ToggleBlockedTime: failed to remove blocked time: %v", err)
			return fmt.Errorf("%w: ToggleBlockedTime - remove: %w", ErrInternal, err)
		}
		if removed {
			nowBlocked = false
			return nil
		}

		// 2. Проверяем, что на слот нет активной записи
		booking, err := s.bookingRepo.FindActiveConflict(txCtx, date, slot)
		if err != nil {
			s.logger.Error("ToggleBlockedTime: failed to check conflict: %v", err)
			return fmt.Errorf("%w: ToggleBlockedTime - check conflict: %w", ErrInternal, err)
		}
		if booking != nil {
			conflict := &domain.ConflictError{Date: date, Times: []types.TimeString{slot}}
			s.logger.Warn("ToggleBlockedTime: %v", conflict)
			return conflict
		}

		// 3. Скрываем слот
		if err := s.overrideRepo.AddBlockedTime(txCtx, date, slot, s.timeProvider.Now()); err != nil {
			s.logger.Error("ToggleBlockedTime: failed to add blocked time: %v", err)
			return fmt.Errorf("%w: ToggleBlockedTime - add: %w", ErrInternal, err)
		}
		nowBlocked = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &models.ToggleBlockedTimeResponse{
		Date:    date.Format(domain.DateFormat),
		Time:    slot.String(),
		Blocked: nowBlocked,
	}, nil
}

func (s *Service) get(ctx context.Context, op string, date time.Time) (*domain.DayOverride, error) {
	override, err := s.overrideRepo.Get(ctx, date)
	if err != nil {
		s.logger.Error("%s: repository error for date=%s: %v", op, date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: %s - repository error: %w", ErrInternal, op, err)
	}
	return override, nil
}

func bookingTimes(bookings []*domain.Booking) []types.TimeString {
	times := make([]types.TimeString, 0, len(bookings))
	for _, b := range bookings {
		times = append(times, b.StartTime)
	}
	return times
}
