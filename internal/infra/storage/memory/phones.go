package memory

import (
	"context"
	"sort"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	phonesRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/phones"
)

type PhoneRepository struct {
	store *Store
}

func (r *PhoneRepository) IsBlocked(ctx context.Context, phone string) (bool, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.blockedPhones[phone]
	return ok, nil
}

func (r *PhoneRepository) Block(ctx context.Context, phone string, reason *string, at time.Time) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.blockedPhones[phone]; ok {
		existing.Reason = reason
		return nil
	}
	s.blockedPhones[phone] = &domain.BlockedPhone{Phone: phone, Reason: reason, CreatedAt: at}
	return nil
}

func (r *PhoneRepository) Unblock(ctx context.Context, phone string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.blockedPhones[phone]; !ok {
		return phonesRepo.ErrPhoneNotBlocked
	}
	delete(s.blockedPhones, phone)
	return nil
}

func (r *PhoneRepository) ListBlocked(ctx context.Context) ([]*domain.BlockedPhone, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.BlockedPhone, 0, len(s.blockedPhones))
	for _, blocked := range s.blockedPhones {
		c := *blocked
		result = append(result, &c)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].Phone < result[j].Phone
	})
	return result, nil
}

func (r *PhoneRepository) GetPolicy(ctx context.Context) (*domain.PhonePolicy, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	policy := s.policy
	return &policy, nil
}

func (r *PhoneRepository) SetPolicy(ctx context.Context, policy domain.PhonePolicy) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.policy = policy
	return nil
}
