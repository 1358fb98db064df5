package storage

import (
	"context"
	"sync"
	"time"

	"pastelaria/domain"
)

// LocalSessionStore is the fallback cart and prefill store over the same KV
// namespace as LocalRepository.
type LocalSessionStore struct {
	KV KV
}

func NewLocalSessionStore(kv KV) *LocalSessionStore {
	return &LocalSessionStore{KV: kv}
}

func (s *LocalSessionStore) LoadCart(ctx context.Context, session string) (domain.Cart, error) {
	cart := domain.Cart{Lines: []domain.CartLine{}}
	if _, err := s.KV.Get(KeyCartPrefix+session, &cart.Lines); err != nil {
		return domain.Cart{Lines: []domain.CartLine{}}, err
	}
	if cart.Lines == nil {
		cart.Lines = []domain.CartLine{}
	}
	return cart, nil
}

func (s *LocalSessionStore) SaveCart(ctx context.Context, session string, cart domain.Cart) error {
	if cart.Lines == nil {
		cart.Lines = []domain.CartLine{}
	}
	return s.KV.Set(KeyCartPrefix+session, cart.Lines)
}

func (s *LocalSessionStore) LoadCustomer(ctx context.Context, session string) (*domain.Customer, error) {
	var customer domain.Customer
	found, err := s.KV.Get(KeyCustomerPrefix+session, &customer)
	if err != nil || !found {
		return nil, err
	}
	return &customer, nil
}

func (s *LocalSessionStore) SaveCustomer(ctx context.Context, session string, customer domain.Customer) error {
	return s.KV.Set(KeyCustomerPrefix+session, customer)
}

// MemoryAlertFeed is the in-process alert queue used when no Redis is configured.
type MemoryAlertFeed struct {
	mu     sync.Mutex
	Window time.Duration
	seen   map[int64]time.Time
	alerts []domain.Alert
	now    func() time.Time
}

func NewMemoryAlertFeed(window time.Duration) *MemoryAlertFeed {
	return &MemoryAlertFeed{Window: window, seen: map[int64]time.Time{}, now: time.Now}
}

func (f *MemoryAlertFeed) Push(ctx context.Context, alert domain.Alert) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	now := f.now()
	if last, ok := f.seen[alert.OrderID]; ok && now.Sub(last) < f.Window {
		return false, nil
	}
	f.seen[alert.OrderID] = now

	f.alerts = append([]domain.Alert{alert}, f.alerts...)
	if len(f.alerts) > maxAlerts {
		f.alerts = f.alerts[:maxAlerts]
	}
	return true, nil
}

func (f *MemoryAlertFeed) Drain(ctx context.Context) ([]domain.Alert, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	drained := f.alerts
	if drained == nil {
		drained = []domain.Alert{}
	}
	f.alerts = nil

	for id, at := range f.seen {
		if f.now().Sub(at) >= f.Window {
			delete(f.seen, id)
		}
	}
	return drained, nil
}
