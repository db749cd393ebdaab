package phones

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	phonesRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/phones"
	"github.com/m04kA/SMC-BarberBooking/internal/service/phones/models"
	"github.com/m04kA/SMC-BarberBooking/pkg/ptr"
)

// Service черный список номеров и политика "одна запись в день"
// Блокировка проверяется только при создании записи и не отменяет существующие
type Service struct {
	repo         PhoneRepository
	timeProvider TimeProvider
	logger       Logger
}

func NewService(repo PhoneRepository, timeProvider TimeProvider, logger Logger) *Service {
	return &Service{
		repo:         repo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Block добавляет номер в черный список
func (s *Service) Block(ctx context.Context, rawPhone string, reason *string) error {
	phone, err := domain.NormalizePhone(rawPhone)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPhone, err)
	}

	if reason != nil {
		trimmed := strings.TrimSpace(*reason)
		if len([]rune(trimmed)) > domain.MaxBlockReasonLen {
			return fmt.Errorf("%w: reason is longer than %d characters", ErrInvalidInput, domain.MaxBlockReasonLen)
		}
		reason = nil
		if trimmed != "" {
			reason = ptr.Ptr(trimmed)
		}
	}

	if err := s.repo.Block(ctx, phone, reason, s.timeProvider.Now()); err != nil {
		s.logger.Error("Block: repository error for phone=%s: %v", phone, err)
		return fmt.Errorf("%w: Block - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("Block: phone=%s blocked", phone)
	return nil
}

// Unblock убирает номер из черного списка
func (s *Service) Unblock(ctx context.Context, rawPhone string) error {
	phone, err := domain.NormalizePhone(rawPhone)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPhone, err)
	}

	if err := s.repo.Unblock(ctx, phone); err != nil {
		if errors.Is(err, phonesRepo.ErrPhoneNotBlocked) {
			s.logger.Warn("Unblock: phone=%s is not blocked", phone)
			return ErrPhoneNotBlocked
		}
		s.logger.Error("Unblock: repository error for phone=%s: %v", phone, err)
		return fmt.Errorf("%w: Unblock - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("Unblock: phone=%s unblocked", phone)
	return nil
}

// ListBlocked черный список
func (s *Service) ListBlocked(ctx context.Context) (*models.BlockedPhoneListResponse, error) {
	phones, err := s.repo.ListBlocked(ctx)
	if err != nil {
		s.logger.Error("ListBlocked: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListBlocked - repository error: %w", ErrInternal, err)
	}
	return models.FromDomainBlockedPhones(phones), nil
}

// GetPolicy текущая политика
func (s *Service) GetPolicy(ctx context.Context) (*models.PhonePolicyResponse, error) {
	policy, err := s.repo.GetPolicy(ctx)
	if err != nil {
		s.logger.Error("GetPolicy: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetPolicy - repository error: %w", ErrInternal, err)
	}
	return &models.PhonePolicyResponse{LimitOnePerDayPerPhone: policy.LimitOnePerDayPerPhone}, nil
}

// SetPolicy включает или выключает ограничение "одна запись на номер в день"
func (s *Service) SetPolicy(ctx context.Context, limitOnePerDay bool) (*models.PhonePolicyResponse, error) {
	policy := domain.PhonePolicy{
		LimitOnePerDayPerPhone: limitOnePerDay,
		UpdatedAt:              s.timeProvider.Now(),
	}

	if err := s.repo.SetPolicy(ctx, policy); err != nil {
		s.logger.Error("SetPolicy: repository error: %v", err)
		return nil, fmt.Errorf("%w: SetPolicy - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("SetPolicy: limitOnePerDayPerPhone=%t", limitOnePerDay)
	return &models.PhonePolicyResponse{LimitOnePerDayPerPhone: limitOnePerDay}, nil
}
