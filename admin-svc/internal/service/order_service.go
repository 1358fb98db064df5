package service

import (
	"context"
	"log"
	"time"

	"pastelaria/domain"
	"pastelaria/messaging"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var tracer = otel.Tracer("admin-svc")

// StatusChange is what the back-office needs to redraw after a status update.
type StatusChange struct {
	Order        *domain.Order         `json:"order"`
	Notification *domain.Notification  `json:"notification,omitempty"`
	Dashboard    domain.DashboardStats `json:"dashboard"`
}

type OrderService struct {
	repo      OrderRepository
	settings  SettingsRepository
	publisher OrderPublisher
	notifier  Notifier
	dashboard DashboardServiceInterface
}

func NewOrderService(repo OrderRepository, settings SettingsRepository, publisher OrderPublisher, notifier Notifier, dashboard DashboardServiceInterface) *OrderService {
	return &OrderService{
		repo:      repo,
		settings:  settings,
		publisher: publisher,
		notifier:  notifier,
		dashboard: dashboard,
	}
}

func (s *OrderService) List(ctx context.Context, limit, offset int, status domain.Status) ([]domain.Order, error) {
	return s.repo.GetOrders(ctx, limit, offset, status)
}

func (s *OrderService) Get(ctx context.Context, id int64) (*domain.Order, error) {
	return s.repo.GetOrder(ctx, id)
}

// ChangeStatus moves an order to status. Terminal orders are frozen, and sending
// an order out for delivery needs the operator's explicit confirmation.
func (s *OrderService) ChangeStatus(ctx context.Context, id int64, raw string, confirmed bool) (*StatusChange, error) {
	ctx, span := tracer.Start(ctx, "OrderService.ChangeStatus")
	defer span.End()
	span.SetAttributes(attribute.Int64("order.id", id), attribute.String("order.target_status", raw))

	status, err := domain.ParseStatus(raw)
	if err != nil {
		return nil, err
	}

	current, err := s.repo.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status.Terminal() {
		return nil, domain.ErrTerminalStatus
	}
	if status == domain.StatusDelivering && !confirmed {
		return nil, domain.ErrConfirmationRequired
	}

	updated, err := s.repo.UpdateOrderStatus(ctx, id, status)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	log.Printf("[admin-svc] order %d: %s -> %s", id, current.Status, status)

	change := &StatusChange{Order: updated}
	change.Notification = s.notify(ctx, *updated, current.Status)
	s.publishChange(ctx, *updated, current.Status)

	if s.dashboard != nil {
		s.dashboard.Invalidate(ctx)
		change.Dashboard = s.dashboard.Today(ctx)
	}
	return change, nil
}

func (s *OrderService) shopName(ctx context.Context) string {
	settings, err := s.settings.GetAllSettings(ctx)
	if err != nil {
		settings = nil
	}
	return domain.MergeDefaults(settings)[domain.SettingSiteTitle]
}

// notify builds the customer message for confirmed and delivering orders. A
// confirmation goes out when the order leaves pending, and again on every repeat
// confirm; stepping back to confirmed from later states is silent.
func (s *OrderService) notify(ctx context.Context, order domain.Order, previous domain.Status) *domain.Notification {
	var kind, text string
	switch order.Status {
	case domain.StatusConfirmed:
		if previous != domain.StatusPending && previous != domain.StatusConfirmed {
			return nil
		}
		kind, text = domain.NotificationConfirmation, messaging.ConfirmationMessage(order, s.shopName(ctx))
	case domain.StatusDelivering:
		kind, text = domain.NotificationDelivery, messaging.DeliveryMessage(order, s.shopName(ctx))
	default:
		return nil
	}

	notification := &domain.Notification{
		OrderID:   order.ID,
		Kind:      kind,
		Phone:     order.CustomerPhone,
		Message:   text,
		Link:      messaging.Link(order.CustomerPhone, text),
		CreatedAt: time.Now(),
	}

	if s.notifier != nil {
		if err := s.notifier.Dispatch(ctx, *notification); err != nil {
			log.Printf("[admin-svc] WARNING: failed to dispatch %s notification for order %d: %v", kind, order.ID, err)
		}
	}
	return notification
}

func (s *OrderService) publishChange(ctx context.Context, order domain.Order, previous domain.Status) {
	if s.publisher == nil {
		return
	}
	err := s.publisher.PublishOrderEvent(ctx, domain.OrderEvent{
		Type:           domain.EventOrderStatusChanged,
		OrderID:        order.ID,
		Status:         order.Status,
		PreviousStatus: previous,
		CustomerName:   order.CustomerName,
		CustomerPhone:  order.CustomerPhone,
		TotalAmount:    order.TotalAmount,
		Timestamp:      time.Now(),
	})
	if err != nil {
		log.Printf("[admin-svc] WARNING: failed to publish status of order %d: %v", order.ID, err)
	}
}
