package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"pastelaria/domain"
)

// Keys of the local namespace. They match what the browser build stored, so a
// file exported from it can be migrated as is.
const (
	KeyMenuItems      = "menuItems"
	KeyAdminSettings  = "adminSettings"
	KeyWhatsAppNumber = "whatsappNumber"
	KeyOrders         = "pastelaria_orders"
	KeyMigrated       = "pastelaria_migrated"
	KeyCartPrefix     = "pastelaria_cart:"
	KeyCustomerPrefix = "pastelaria_customer:"
)

type adminSettings struct {
	SiteTitle   string `json:"siteTitle,omitempty"`
	DeliveryFee string `json:"deliveryFee,omitempty"`
}

// LocalRepository is the fallback Adapter over a KV namespace.
type LocalRepository struct {
	mu  sync.Mutex
	KV  KV
	now func() time.Time
}

func NewLocalRepository(kv KV) *LocalRepository {
	return &LocalRepository{KV: kv, now: time.Now}
}

func (r *LocalRepository) loadMenu() ([]domain.MenuItem, error) {
	var items []domain.MenuItem
	found, err := r.KV.Get(KeyMenuItems, &items)
	if err != nil {
		return nil, err
	}
	if !found {
		items = domain.DefaultMenu()
		if err := r.KV.Set(KeyMenuItems, items); err != nil {
			return nil, err
		}
	}
	return items, nil
}

func (r *LocalRepository) GetMenuItems(ctx context.Context) ([]domain.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loadMenu()
}

// nextMenuID is timestamp-derived and bumped past any id already in use.
func (r *LocalRepository) nextMenuID(items []domain.MenuItem) int64 {
	id := r.now().UnixMilli()
	for _, item := range items {
		if item.ID >= id {
			id = item.ID + 1
		}
	}
	return id
}

func (r *LocalRepository) AddMenuItem(ctx context.Context, item domain.MenuItem) (*domain.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.loadMenu()
	if err != nil {
		return nil, err
	}

	now := r.now()
	item.ID = r.nextMenuID(items)
	item.CreatedAt = now
	item.UpdatedAt = now
	items = append(items, item)

	if err := r.KV.Set(KeyMenuItems, items); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *LocalRepository) UpdateMenuItem(ctx context.Context, id int64, fields domain.MenuItem) (*domain.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.loadMenu()
	if err != nil {
		return nil, err
	}

	for i := range items {
		if items[i].ID != id {
			continue
		}
		items[i].Name = fields.Name
		items[i].Price = fields.Price
		items[i].Category = fields.Category
		items[i].Description = fields.Description
		items[i].UpdatedAt = r.now()

		if err := r.KV.Set(KeyMenuItems, items); err != nil {
			return nil, err
		}
		updated := items[i]
		return &updated, nil
	}
	return nil, domain.ErrNotFound
}

func (r *LocalRepository) DeleteMenuItem(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.loadMenu()
	if err != nil {
		return err
	}

	kept := items[:0]
	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(items) {
		return nil
	}
	return r.KV.Set(KeyMenuItems, kept)
}

func (r *LocalRepository) loadSettings() (map[string]string, error) {
	settings := map[string]string{}

	var admin adminSettings
	if _, err := r.KV.Get(KeyAdminSettings, &admin); err != nil {
		return nil, err
	}
	if admin.SiteTitle != "" {
		settings[domain.SettingSiteTitle] = admin.SiteTitle
	}
	if admin.DeliveryFee != "" {
		settings[domain.SettingDeliveryFee] = admin.DeliveryFee
	}

	var number string
	if _, err := r.KV.Get(KeyWhatsAppNumber, &number); err != nil {
		return nil, err
	}
	if number != "" {
		settings[domain.SettingWhatsAppNumber] = number
	}
	return settings, nil
}

func (r *LocalRepository) GetSetting(ctx context.Context, key string) (string, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	settings, err := r.loadSettings()
	if err != nil {
		return "", false, err
	}
	value, ok := settings[key]
	return value, ok, nil
}

func (r *LocalRepository) SaveSetting(ctx context.Context, key, value string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if key == domain.SettingWhatsAppNumber {
		return value, r.KV.Set(KeyWhatsAppNumber, value)
	}

	var admin adminSettings
	if _, err := r.KV.Get(KeyAdminSettings, &admin); err != nil {
		return "", err
	}
	switch key {
	case domain.SettingSiteTitle:
		admin.SiteTitle = value
	case domain.SettingDeliveryFee:
		admin.DeliveryFee = value
	default:
		return "", &domain.ValidationError{Field: "key", Message: "unknown setting " + key}
	}
	return value, r.KV.Set(KeyAdminSettings, admin)
}

func (r *LocalRepository) GetAllSettings(ctx context.Context) (map[string]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loadSettings()
}

func (r *LocalRepository) EnsureDefaultSettings(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var admin adminSettings
	found, err := r.KV.Get(KeyAdminSettings, &admin)
	if err != nil {
		return err
	}
	changed := !found
	if admin.SiteTitle == "" {
		admin.SiteTitle = domain.DefaultSettings[domain.SettingSiteTitle]
		changed = true
	}
	if admin.DeliveryFee == "" {
		admin.DeliveryFee = domain.DefaultSettings[domain.SettingDeliveryFee]
		changed = true
	}
	if changed {
		if err := r.KV.Set(KeyAdminSettings, admin); err != nil {
			return err
		}
	}

	var number string
	if found, err := r.KV.Get(KeyWhatsAppNumber, &number); err != nil {
		return err
	} else if !found || number == "" {
		return r.KV.Set(KeyWhatsAppNumber, domain.DefaultSettings[domain.SettingWhatsAppNumber])
	}
	return nil
}

func (r *LocalRepository) loadOrders() ([]domain.Order, error) {
	var orders []domain.Order
	if _, err := r.KV.Get(KeyOrders, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *LocalRepository) CreateOrder(ctx context.Context, order domain.Order) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	orders, err := r.loadOrders()
	if err != nil {
		return nil, err
	}

	var maxID int64
	for _, o := range orders {
		if o.ID > maxID {
			maxID = o.ID
		}
	}

	now := r.now()
	order.ID = maxID + 1
	order.CreatedAt = now
	order.UpdatedAt = now
	if order.Status == "" {
		order.Status = domain.StatusPending
	}

	orders = append(orders, order)
	if err := r.KV.Set(KeyOrders, orders); err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *LocalRepository) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	orders, err := r.loadOrders()
	if err != nil {
		return nil, err
	}
	for _, o := range orders {
		if o.ID == id {
			found := o
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

func newestFirst(orders []domain.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
}

func (r *LocalRepository) GetOrders(ctx context.Context, limit, offset int, status domain.Status) ([]domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if limit <= 0 {
		limit = DefaultOrdersLimit
	}
	if offset < 0 {
		offset = 0
	}

	orders, err := r.loadOrders()
	if err != nil {
		return nil, err
	}

	filtered := []domain.Order{}
	for _, o := range orders {
		if status == "" || o.Status == status {
			filtered = append(filtered, o)
		}
	}
	newestFirst(filtered)

	if offset >= len(filtered) {
		return []domain.Order{}, nil
	}
	end := offset + limit
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[offset:end], nil
}

func (r *LocalRepository) GetOrdersBetween(ctx context.Context, from, to time.Time) ([]domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	orders, err := r.loadOrders()
	if err != nil {
		return nil, err
	}

	window := []domain.Order{}
	for _, o := range orders {
		if !o.CreatedAt.Before(from) && o.CreatedAt.Before(to) {
			window = append(window, o)
		}
	}
	newestFirst(window)
	return window, nil
}

func (r *LocalRepository) UpdateOrderStatus(ctx context.Context, id int64, status domain.Status) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	orders, err := r.loadOrders()
	if err != nil {
		return nil, err
	}

	for i := range orders {
		if orders[i].ID != id {
			continue
		}
		orders[i].Status = status
		orders[i].UpdatedAt = r.now()
		if err := r.KV.Set(KeyOrders, orders); err != nil {
			return nil, err
		}
		updated := orders[i]
		return &updated, nil
	}
	return nil, domain.ErrNotFound
}

func (r *LocalRepository) Migrated() (bool, error) {
	var migrated bool
	_, err := r.KV.Get(KeyMigrated, &migrated)
	return migrated, err
}

func (r *LocalRepository) MarkMigrated() error {
	return r.KV.Set(KeyMigrated, true)
}
