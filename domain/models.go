package domain

import "time"

type MenuItem struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// OrderItem is the snapshot of a cart line captured at checkout.
type OrderItem struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Description string  `json:"description,omitempty"`
}

func (i OrderItem) Subtotal() float64 {
	return RoundCents(i.Price * float64(i.Quantity))
}

type Order struct {
	ID                   int64       `json:"id"`
	CustomerName         string      `json:"customer_name"`
	CustomerPhone        string      `json:"customer_phone"`
	CustomerAddress      string      `json:"customer_address"`
	CustomerNeighborhood string      `json:"customer_neighborhood"`
	CustomerReference    string      `json:"customer_reference,omitempty"`
	CustomerObservations string      `json:"customer_observations,omitempty"`
	Items                []OrderItem `json:"items"`
	TotalAmount          float64     `json:"total_amount"`
	DeliveryFee          float64     `json:"delivery_fee"`
	PaymentMethod        string      `json:"payment_method,omitempty"`
	Status               Status      `json:"status"`
	WhatsAppMessage      string      `json:"whatsapp_message,omitempty"`
	CreatedAt            time.Time   `json:"created_at"`
	UpdatedAt            time.Time   `json:"updated_at"`
}

// Customer is the contact data remembered between checkouts of one session.
type Customer struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	Neighborhood  string `json:"neighborhood"`
	Reference     string `json:"reference,omitempty"`
	Observations  string `json:"observations,omitempty"`
	PaymentMethod string `json:"payment_method,omitempty"`
}

type DashboardStats struct {
	TotalOrders  int     `json:"total_orders"`
	Pending      int     `json:"pending"`
	Confirmed    int     `json:"confirmed"`
	Delivering   int     `json:"delivering"`
	Delivered    int     `json:"delivered"`
	TotalRevenue float64 `json:"total_revenue"`
}

type Alert struct {
	OrderID      int64     `json:"order_id"`
	CustomerName string    `json:"customer_name"`
	TotalAmount  float64   `json:"total_amount"`
	Message      string    `json:"message"`
	CreatedAt    time.Time `json:"created_at"`
}
