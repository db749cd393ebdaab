package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/internal/service/schedule/models"
)

// Service недельное расписание салона
type Service struct {
	repo         ScheduleRepository
	timeProvider TimeProvider
	logger       Logger
}

func NewService(repo ScheduleRepository, timeProvider TimeProvider, logger Logger) *Service {
	return &Service{
		repo:         repo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// EnsureDefaults заводит расписание по умолчанию для отсутствующих дней
func (s *Service) EnsureDefaults(ctx context.Context) error {
	if err := s.repo.SeedDefaults(ctx, domain.DefaultWeeklyHours(), s.timeProvider.Now()); err != nil {
		s.logger.Error("EnsureDefaults: failed to seed weekly hours: %v", err)
		return fmt.Errorf("%w: EnsureDefaults - seed: %w", ErrInternal, err)
	}
	return nil
}

// GetWeeklyHours возвращает расписание. При первом обращении заводит значения по умолчанию
func (s *Service) GetWeeklyHours(ctx context.Context) (domain.WeeklyHours, error) {
	hours, err := s.repo.GetWeeklyHours(ctx)
	if err != nil {
		s.logger.Error("GetWeeklyHours: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetWeeklyHours - repository error: %w", ErrInternal, err)
	}

	if len(hours) == len(domain.Weekdays) {
		return hours, nil
	}

	s.logger.Info("GetWeeklyHours: %d of %d days stored, seeding defaults", len(hours), len(domain.Weekdays))
	if err := s.EnsureDefaults(ctx); err != nil {
		return nil, err
	}

	hours, err = s.repo.GetWeeklyHours(ctx)
	if err != nil {
		s.logger.Error("GetWeeklyHours: repository error after seeding: %v", err)
		return nil, fmt.Errorf("%w: GetWeeklyHours - repository error: %w", ErrInternal, err)
	}
	return hours, nil
}

// GetWeeklyHoursView расписание в виде ответа API
func (s *Service) GetWeeklyHoursView(ctx context.Context) (*models.WeeklyHoursResponse, error) {
	hours, err := s.GetWeeklyHours(ctx)
	if err != nil {
		return nil, err
	}
	return models.FromDomainWeeklyHours(hours), nil
}

// SetDay меняет окно дня недели, nil закрывает день
func (s *Service) SetDay(ctx context.Context, day time.Weekday, window *domain.Window) error {
	if day < time.Sunday || day > time.Saturday {
		return fmt.Errorf("%w: %d", ErrInvalidWeekday, day)
	}

	if window != nil {
		if err := window.Validate(); err != nil {
			s.logger.Warn("SetDay: invalid window for %s: %v", domain.WeekdayName(day), err)
			return fmt.Errorf("%w: %v", ErrInvalidWindow, err)
		}
	}

	if err := s.repo.SetDay(ctx, day, window, s.timeProvider.Now()); err != nil {
		s.logger.Error("SetDay: repository error for %s: %v", domain.WeekdayName(day), err)
		return fmt.Errorf("%w: SetDay - repository error: %w", ErrInternal, err)
	}

	if window == nil {
		s.logger.Info("SetDay: %s is now closed", domain.WeekdayName(day))
	} else {
		s.logger.Info("SetDay: %s set to %s-%s", domain.WeekdayName(day), window.From, window.To)
	}
	return nil
}

// ApplyWeek сохраняет окна сразу для нескольких дней недели
// Все дни проверяются до первой записи
func (s *Service) ApplyWeek(ctx context.Context, days []models.DayHours) error {
	parsed := make(map[time.Weekday]*domain.Window, len(days))
	for _, item := range days {
		day, err := domain.ParseWeekday(item.Weekday)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidWeekday, err)
		}

		window, err := toWindow(item)
		if err != nil {
			return err
		}
		if window != nil {
			if err := window.Validate(); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidWindow, err)
			}
		}
		parsed[day] = window
	}

	for _, day := range domain.Weekdays {
		window, ok := parsed[day]
		if !ok {
			continue
		}
		if err := s.SetDay(ctx, day, window); err != nil {
			return err
		}
	}
	return nil
}
