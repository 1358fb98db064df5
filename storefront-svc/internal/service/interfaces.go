package service

import (
	"context"

	"pastelaria/catalog"
	"pastelaria/domain"
)

type MenuServiceInterface interface {
	List(ctx context.Context, filter catalog.Filter) ([]domain.MenuItem, error)
	Categories() []catalog.CategoryInfo
	Settings(ctx context.Context) map[string]string
}

type CartServiceInterface interface {
	Get(ctx context.Context, session string) (domain.Cart, error)
	AddItem(ctx context.Context, session string, req AddItemRequest) (domain.Cart, error)
	ChangeQuantity(ctx context.Context, session, name string, delta int) (domain.Cart, error)
	RemoveLine(ctx context.Context, session, name string) (domain.Cart, error)
	Clear(ctx context.Context, session string) error
}

type CheckoutServiceInterface interface {
	Customer(ctx context.Context, session string) (*domain.Customer, error)
	Checkout(ctx context.Context, session string, customer domain.Customer) (*CheckoutResult, error)
	OrderQRCode(ctx context.Context, orderID int64) ([]byte, error)
}

type MenuReader interface {
	List(ctx context.Context, filter catalog.Filter) ([]domain.MenuItem, error)
	Get(ctx context.Context, id int64) (*domain.MenuItem, error)
	Categories() []catalog.CategoryInfo
}

type SettingsReader interface {
	GetAllSettings(ctx context.Context) (map[string]string, error)
}

type SessionStore interface {
	LoadCart(ctx context.Context, session string) (domain.Cart, error)
	SaveCart(ctx context.Context, session string, cart domain.Cart) error
	LoadCustomer(ctx context.Context, session string) (*domain.Customer, error)
	SaveCustomer(ctx context.Context, session string, customer domain.Customer) error
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, order domain.Order) (*domain.Order, error)
	GetOrder(ctx context.Context, id int64) (*domain.Order, error)
}

type OrderPublisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
}

type QRGenerator interface {
	Generate(content string) ([]byte, error)
}

var (
	_ MenuServiceInterface     = (*MenuService)(nil)
	_ CartServiceInterface     = (*CartService)(nil)
	_ CheckoutServiceInterface = (*CheckoutService)(nil)
)
