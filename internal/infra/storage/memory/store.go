package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

// Store хранилище в памяти процесса
//
// Реализует те же контракты, что и postgres репозитории, и возвращает
// их sentinel ошибки. Используется для локального запуска (database.driver = "memory")
// и в тестах конкурентного поведения.
type Store struct {
	mu sync.RWMutex

	bookings      map[string]*domain.Booking
	overrides     map[string]*dayRow
	blockedTimes  map[string]map[types.TimeString]struct{}
	weeklyHours   domain.WeeklyHours
	blockedPhones map[string]*domain.BlockedPhone
	policy        domain.PhonePolicy

	// txMu сериализует транзакции TxManager
	txMu sync.Mutex
}

type dayRow struct {
	blocked    bool
	extraSlots int
}

func NewStore() *Store {
	return &Store{
		bookings:      make(map[string]*domain.Booking),
		overrides:     make(map[string]*dayRow),
		blockedTimes:  make(map[string]map[types.TimeString]struct{}),
		weeklyHours:   make(domain.WeeklyHours),
		blockedPhones: make(map[string]*domain.BlockedPhone),
	}
}

func (s *Store) Bookings() *BookingRepository {
	return &BookingRepository{store: s}
}

func (s *Store) Overrides() *OverrideRepository {
	return &OverrideRepository{store: s}
}

func (s *Store) Schedule() *ScheduleRepository {
	return &ScheduleRepository{store: s}
}

func (s *Store) Phones() *PhoneRepository {
	return &PhoneRepository{store: s}
}

func (s *Store) TxManager() *TxManager {
	return &TxManager{store: s}
}

// PingContext всегда успешен (для /readyz)
func (s *Store) PingContext(ctx context.Context) error {
	return ctx.Err()
}

func dateKey(date time.Time) string {
	return date.Format(domain.DateFormat)
}

type txKey struct{}

// TxManager транзакции поверх глобального мьютекса
// Вложенные вызовы выполняются внутри уже захваченной транзакции.
// Отката нет: вызывающий код сначала проверяет все условия, потом пишет.
type TxManager struct {
	store *Store
}

func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}

	m.store.txMu.Lock()
	defer m.store.txMu.Unlock()

	return fn(context.WithValue(ctx, txKey{}, struct{}{}))
}

func (m *TxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.Do(ctx, fn)
}
