package domain

import (
	"fmt"
	"time"
)

const (
	EventOrderCreated       = "order_created"
	EventOrderStatusChanged = "order_status_changed"
)

// OrderEvent is published on the orders topic, keyed by order id.
type OrderEvent struct {
	Type           string    `json:"type"`
	OrderID        int64     `json:"order_id"`
	Status         Status    `json:"status"`
	PreviousStatus Status    `json:"previous_status,omitempty"`
	CustomerName   string    `json:"customer_name,omitempty"`
	CustomerPhone  string    `json:"customer_phone,omitempty"`
	TotalAmount    float64   `json:"total_amount"`
	Timestamp      time.Time `json:"timestamp"`
}

const (
	NotificationConfirmation = "confirmation"
	NotificationDelivery     = "delivery"
)

// Notification is a customer-facing message ready to open in the messaging channel.
type Notification struct {
	OrderID   int64     `json:"order_id"`
	Kind      string    `json:"kind"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	Link      string    `json:"link"`
	CreatedAt time.Time `json:"created_at"`
}

// NewOrderAlert is the back-office banner for a freshly placed order.
func NewOrderAlert(orderID int64, customer string, total float64, at time.Time) Alert {
	return Alert{
		OrderID:      orderID,
		CustomerName: customer,
		TotalAmount:  total,
		Message:      fmt.Sprintf("Novo pedido #%d de %s - R$ %s", orderID, customer, FormatBRL(total)),
		CreatedAt:    at,
	}
}
