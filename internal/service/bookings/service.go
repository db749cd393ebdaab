package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-BarberBooking/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями (отмена, восстановление, списки, очистка)
type Service struct {
	bookingRepo  BookingRepository
	overrideRepo OverrideRepository
	txManager    TransactionManager
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	overrideRepo OverrideRepository,
	txManager TransactionManager,
	metrics Metrics,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		overrideRepo: overrideRepo,
		txManager:    txManager,
		metrics:      metrics,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetByCode ищет запись по короткому коду клиента
func (s *Service) GetByCode(ctx context.Context, code string) (*models.BookingResponse, error) {
	code = normalizeCode(code)
	if code == "" {
		return nil, fmt.Errorf("%w: code is required", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, s.mapRepoError("GetByCode", code, err)
	}

	return models.FromDomainBooking(booking), nil
}

// GetByID получает запись по ID (панель барбера)
func (s *Service) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapRepoError("GetByID", id, err)
	}
	return models.FromDomainBooking(booking), nil
}

// ListActiveByDate активные записи на дату
func (s *Service) ListActiveByDate(ctx context.Context, date time.Time) (*models.BookingListResponse, error) {
	bookings, err := s.bookingRepo.ListActiveByDate(ctx, date)
	if err != nil {
		s.logger.Error("ListActiveByDate: repository error for date=%s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: ListActiveByDate - repository error: %w", ErrInternal, err)
	}
	return models.FromDomainBookings(bookings), nil
}

// ListByDate все записи на дату, включая отмененные
func (s *Service) ListByDate(ctx context.Context, date time.Time) (*models.BookingListResponse, error) {
	bookings, err := s.bookingRepo.ListByDate(ctx, date)
	if err != nil {
		s.logger.Error("ListByDate: repository error for date=%s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: ListByDate - repository error: %w", ErrInternal, err)
	}
	return models.FromDomainBookings(bookings), nil
}

// ListActiveByPhone активные записи клиента ("мои записи" и поиск в панели)
func (s *Service) ListActiveByPhone(ctx context.Context, rawPhone string) (*models.BookingListResponse, error) {
	phone, err := domain.NormalizePhone(rawPhone)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPhone, err)
	}

	bookings, err := s.bookingRepo.ListActiveByPhone(ctx, phone)
	if err != nil {
		s.logger.Error("ListActiveByPhone: repository error for phone=%s: %v", phone, err)
		return nil, fmt.Errorf("%w: ListActiveByPhone - repository error: %w", ErrInternal, err)
	}
	return models.FromDomainBookings(bookings), nil
}

// Cancel отменяет запись по ID (панель барбера)
func (s *Service) Cancel(ctx context.Context, id string) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%s", id)

	if err := s.bookingRepo.Cancel(ctx, id, s.timeProvider.Now()); err != nil {
		return nil, s.mapRepoError("Cancel", id, err)
	}

	return s.GetByID(ctx, id)
}

// CancelByCode отменяет запись по коду клиента
func (s *Service) CancelByCode(ctx context.Context, code string) (*models.BookingResponse, error) {
	code = normalizeCode(code)
	if code == "" {
		return nil, fmt.Errorf("%w: code is required", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, s.mapRepoError("CancelByCode", code, err)
	}

	s.logger.Info("CancelByCode: cancelling booking id=%s code=%s", booking.ID, code)

	if err := s.bookingRepo.Cancel(ctx, booking.ID, s.timeProvider.Now()); err != nil {
		return nil, s.mapRepoError("CancelByCode", code, err)
	}

	return s.GetByID(ctx, booking.ID)
}

// Restore возвращает отмененную запись, если её слот никто не занял
// и барбер не закрыл этот день или это время
func (s *Service) Restore(ctx context.Context, id string) (*models.BookingResponse, error) {
	s.logger.Info("Restore: restoring booking id=%s", id)

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := s.bookingRepo.GetByID(txCtx, id)
		if err != nil {
			return s.mapRepoError("Restore", id, err)
		}

		override, err := s.overrideRepo.Get(txCtx, booking.BookingDate)
		if err != nil {
			s.logger.Error("Restore: failed to get override for date=%s: %v",
				booking.BookingDate.Format(domain.DateFormat), err)
			return fmt.Errorf("%w: Restore - get override: %w", ErrInternal, err)
		}
		if override.Blocked || override.IsTimeBlocked(booking.StartTime) {
			s.logger.Warn("Restore: booking %s points to closed time %s %s",
				id, booking.BookingDate.Format(domain.DateFormat), booking.StartTime)
			return ErrSlotClosed
		}

		if err := s.bookingRepo.Restore(txCtx, id); err != nil {
			return s.mapRepoError("Restore", id, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetByID(ctx, id)
}

// Delete физически удаляет запись
func (s *Service) Delete(ctx context.Context, id string) error {
	s.logger.Info("Delete: deleting booking id=%s", id)

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		return s.mapRepoError("Delete", id, err)
	}
	return nil
}

// PurgeExpired удаляет записи, начавшиеся больше graceMinutes назад
func (s *Service) PurgeExpired(ctx context.Context, graceMinutes int) (int64, error) {
	if graceMinutes < 0 {
		return 0, fmt.Errorf("%w: grace minutes must not be negative", ErrInvalidInput)
	}

	cutoff := s.timeProvider.Now().Add(-time.Duration(graceMinutes) * time.Minute)

	purged, err := s.bookingRepo.PurgeExpired(ctx, cutoff)
	if err != nil {
		s.logger.Error("PurgeExpired: repository error: %v", err)
		return 0, fmt.Errorf("%w: PurgeExpired - repository error: %w", ErrInternal, err)
	}

	s.metrics.AddBookingsPurged(purged)
	if purged > 0 {
		s.logger.Info("PurgeExpired: purged %d bookings started before %s", purged, cutoff.Format(time.DateTime))
	}
	return purged, nil
}

func (s *Service) mapRepoError(op, key string, err error) error {
	switch {
	case errors.Is(err, bookingRepo.ErrBookingNotFound):
		s.logger.Warn("%s: booking %s not found", op, key)
		return ErrBookingNotFound
	case errors.Is(err, bookingRepo.ErrNotActive):
		s.logger.Warn("%s: booking %s is already cancelled", op, key)
		return ErrAlreadyCancelled
	case errors.Is(err, bookingRepo.ErrNotCancelled):
		s.logger.Warn("%s: booking %s is not cancelled", op, key)
		return ErrNotCancelled
	case errors.Is(err, bookingRepo.ErrSlotNotAvailable):
		s.logger.Warn("%s: slot of booking %s is taken", op, key)
		return ErrConflict
	default:
		s.logger.Error("%s: repository error for booking %s: %v", op, key, err)
		return fmt.Errorf("%w: %s - repository error: %w", ErrInternal, op, err)
	}
}

func normalizeCode(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}
