package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"pastelaria/config"
	"pastelaria/domain"
)

// Adapter is the persistence contract shared by the storefront and the back-office.
// Exactly one implementation is chosen at process start.
type Adapter interface {
	GetMenuItems(ctx context.Context) ([]domain.MenuItem, error)
	AddMenuItem(ctx context.Context, item domain.MenuItem) (*domain.MenuItem, error)
	UpdateMenuItem(ctx context.Context, id int64, fields domain.MenuItem) (*domain.MenuItem, error)
	DeleteMenuItem(ctx context.Context, id int64) error

	GetSetting(ctx context.Context, key string) (string, bool, error)
	SaveSetting(ctx context.Context, key, value string) (string, error)
	GetAllSettings(ctx context.Context) (map[string]string, error)
	EnsureDefaultSettings(ctx context.Context) error

	CreateOrder(ctx context.Context, order domain.Order) (*domain.Order, error)
	GetOrder(ctx context.Context, id int64) (*domain.Order, error)
	GetOrders(ctx context.Context, limit, offset int, status domain.Status) ([]domain.Order, error)
	GetOrdersBetween(ctx context.Context, from, to time.Time) ([]domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id int64, status domain.Status) (*domain.Order, error)
}

var (
	_ Adapter = (*PostgresRepository)(nil)
	_ Adapter = (*LocalRepository)(nil)
)

const DefaultOrdersLimit = 50

// NewAdapter opens the backend named by cfg.StorageMode. For postgres the caller
// owns db; for local the data file is opened here.
func NewAdapter(cfg config.Config, db *sql.DB) (Adapter, error) {
	switch cfg.StorageMode {
	case config.StorageModePostgres:
		if db == nil {
			return nil, fmt.Errorf("postgres mode requires a database handle")
		}
		return NewPostgresRepository(db), nil
	case config.StorageModeLocal:
		kv, err := OpenFileKV(cfg.LocalDataFile)
		if err != nil {
			return nil, err
		}
		return NewLocalRepository(kv), nil
	default:
		return nil, fmt.Errorf("unknown storage mode %q", cfg.StorageMode)
	}
}
