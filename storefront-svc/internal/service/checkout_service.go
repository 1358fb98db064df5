package service

import (
	"context"
	"log"
	"strings"
	"time"

	"pastelaria/config"
	"pastelaria/domain"
	"pastelaria/messaging"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var tracer = otel.Tracer("storefront-svc")

type CheckoutResult struct {
	Order      *domain.Order `json:"order"`
	Message    string        `json:"message"`
	Link       string        `json:"whatsapp_link"`
	OrderSaved bool          `json:"order_saved"`
}

type CheckoutService struct {
	sessions  SessionStore
	orders    OrderRepository
	settings  SettingsReader
	publisher OrderPublisher
	qr        QRGenerator
	mode      string
}

func NewCheckoutService(sessions SessionStore, orders OrderRepository, settings SettingsReader, publisher OrderPublisher, qr QRGenerator, mode string) *CheckoutService {
	if mode != config.CheckoutModeSimple {
		mode = config.CheckoutModeFull
	}
	return &CheckoutService{
		sessions:  sessions,
		orders:    orders,
		settings:  settings,
		publisher: publisher,
		qr:        qr,
		mode:      mode,
	}
}

// Customer returns the contact data remembered for the session, or nil.
func (s *CheckoutService) Customer(ctx context.Context, session string) (*domain.Customer, error) {
	return s.sessions.LoadCustomer(ctx, session)
}

func trimCustomer(c domain.Customer) domain.Customer {
	return domain.Customer{
		Name:          strings.TrimSpace(c.Name),
		Phone:         strings.TrimSpace(c.Phone),
		Address:       strings.TrimSpace(c.Address),
		Neighborhood:  strings.TrimSpace(c.Neighborhood),
		Reference:     strings.TrimSpace(c.Reference),
		Observations:  strings.TrimSpace(c.Observations),
		PaymentMethod: strings.TrimSpace(c.PaymentMethod),
	}
}

type requiredField struct {
	field string
	value string
}

// requireFields reports the first blank field in form order.
func (s *CheckoutService) requireFields(c domain.Customer) error {
	required := []requiredField{{"name", c.Name}, {"neighborhood", c.Neighborhood}}
	if s.mode == config.CheckoutModeFull {
		required = append(required, requiredField{"address", c.Address}, requiredField{"phone", c.Phone})
	}

	for _, r := range required {
		if r.value == "" {
			return &domain.ValidationError{Field: r.field, Message: r.field + " is required"}
		}
	}
	return nil
}

func (s *CheckoutService) Checkout(ctx context.Context, session string, customer domain.Customer) (*CheckoutResult, error) {
	ctx, span := tracer.Start(ctx, "CheckoutService.Checkout")
	defer span.End()

	cart, err := s.sessions.LoadCart(ctx, session)
	if err != nil {
		log.Printf("[storefront-svc] WARNING: cart %s unreadable: %v", session, err)
		cart = domain.Cart{Lines: []domain.CartLine{}}
	}
	if cart.Empty() {
		return nil, &domain.ValidationError{Field: "cart", Message: "cart is empty"}
	}

	customer = trimCustomer(customer)
	if err := s.requireFields(customer); err != nil {
		return nil, err
	}
	// Simple mode may leave the phone blank; anything given must be a real number.
	if customer.Phone != "" {
		phone, err := domain.ValidatePhone(domain.NormalizePhone(customer.Phone))
		if err != nil {
			return nil, err
		}
		customer.Phone = phone
	}

	settings := loadSettings(ctx, s.settings)
	fee := domain.DeliveryFee(settings)
	includeFee := s.mode == config.CheckoutModeFull

	items := cart.Snapshot()
	total := cart.Total()
	if includeFee {
		total = domain.RoundCents(total + fee)
	}

	message := messaging.CheckoutMessage(items, messaging.CheckoutDetails{
		Customer:    customer,
		DeliveryFee: fee,
		IncludeFee:  includeFee,
		Total:       total,
	})
	result := &CheckoutResult{
		Message: message,
		Link:    messaging.Link(settings[domain.SettingWhatsAppNumber], message),
	}

	order := domain.Order{
		CustomerName:         customer.Name,
		CustomerPhone:        customer.Phone,
		CustomerAddress:      customer.Address,
		CustomerNeighborhood: customer.Neighborhood,
		CustomerReference:    customer.Reference,
		CustomerObservations: customer.Observations,
		Items:                items,
		TotalAmount:          total,
		DeliveryFee:          fee,
		PaymentMethod:        customer.PaymentMethod,
		Status:               domain.StatusPending,
		WhatsAppMessage:      message,
	}

	saved, err := s.orders.CreateOrder(ctx, order)
	if err != nil {
		log.Printf("[storefront-svc] WARNING: order not saved, handing off the message only: %v", err)
		span.RecordError(err)
		result.Order = &order
	} else {
		result.Order = saved
		result.OrderSaved = true
		span.SetAttributes(attribute.Int64("order.id", saved.ID))
		s.publishCreated(ctx, saved)
	}

	cart.Clear()
	if err := s.sessions.SaveCart(ctx, session, cart); err != nil {
		log.Printf("[storefront-svc] WARNING: failed to clear cart %s: %v", session, err)
	}
	if err := s.sessions.SaveCustomer(ctx, session, customer); err != nil {
		log.Printf("[storefront-svc] WARNING: failed to remember customer for %s: %v", session, err)
	}

	return result, nil
}

func (s *CheckoutService) publishCreated(ctx context.Context, order *domain.Order) {
	if s.publisher == nil {
		return
	}
	err := s.publisher.PublishOrderEvent(ctx, domain.OrderEvent{
		Type:          domain.EventOrderCreated,
		OrderID:       order.ID,
		Status:        order.Status,
		CustomerName:  order.CustomerName,
		CustomerPhone: order.CustomerPhone,
		TotalAmount:   order.TotalAmount,
		Timestamp:     time.Now(),
	})
	if err != nil {
		log.Printf("[storefront-svc] WARNING: failed to publish order %d: %v", order.ID, err)
	}
}

// OrderQRCode encodes the order's hand-off link so it can be reopened on another device.
func (s *CheckoutService) OrderQRCode(ctx context.Context, orderID int64) ([]byte, error) {
	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	settings := loadSettings(ctx, s.settings)
	return s.qr.Generate(messaging.Link(settings[domain.SettingWhatsAppNumber], order.WhatsAppMessage))
}
