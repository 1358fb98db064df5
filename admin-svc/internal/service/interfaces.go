package service

import (
	"context"
	"time"

	"pastelaria/catalog"
	"pastelaria/domain"
)

type MenuServiceInterface interface {
	List(ctx context.Context, filter catalog.Filter) ([]domain.MenuItem, error)
	Add(ctx context.Context, in catalog.Input) (*domain.MenuItem, error)
	Update(ctx context.Context, id int64, in catalog.Input) (*domain.MenuItem, error)
	Remove(ctx context.Context, id int64) error
}

type SettingsServiceInterface interface {
	GetAll(ctx context.Context) (map[string]string, error)
	Save(ctx context.Context, key, value string) (string, error)
}

type OrderServiceInterface interface {
	List(ctx context.Context, limit, offset int, status domain.Status) ([]domain.Order, error)
	Get(ctx context.Context, id int64) (*domain.Order, error)
	ChangeStatus(ctx context.Context, id int64, status string, confirmed bool) (*StatusChange, error)
}

type DashboardServiceInterface interface {
	Today(ctx context.Context) domain.DashboardStats
	Invalidate(ctx context.Context)
}

type AlertServiceInterface interface {
	Drain(ctx context.Context) ([]domain.Alert, error)
}

type OrderRepository interface {
	GetOrder(ctx context.Context, id int64) (*domain.Order, error)
	GetOrders(ctx context.Context, limit, offset int, status domain.Status) ([]domain.Order, error)
	GetOrdersBetween(ctx context.Context, from, to time.Time) ([]domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id int64, status domain.Status) (*domain.Order, error)
}

type SettingsRepository interface {
	GetAllSettings(ctx context.Context) (map[string]string, error)
	SaveSetting(ctx context.Context, key, value string) (string, error)
}

type OrderPublisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
}

type Notifier interface {
	Dispatch(ctx context.Context, notification domain.Notification) error
}

type DashboardCache interface {
	Get(ctx context.Context, day string) (*domain.DashboardStats, error)
	Set(ctx context.Context, day string, stats domain.DashboardStats) error
	Invalidate(ctx context.Context, day string) error
}

type AlertFeed interface {
	Push(ctx context.Context, alert domain.Alert) (bool, error)
	Drain(ctx context.Context) ([]domain.Alert, error)
}

var (
	_ MenuServiceInterface      = (*MenuService)(nil)
	_ SettingsServiceInterface  = (*SettingsService)(nil)
	_ OrderServiceInterface     = (*OrderService)(nil)
	_ DashboardServiceInterface = (*DashboardService)(nil)
	_ AlertServiceInterface     = (*AlertService)(nil)
)
