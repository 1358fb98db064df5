package messaging

import (
	"fmt"
	"strings"

	"pastelaria/domain"
)

const (
	placeholderAddress      = "[Complemento - Rua, número, casa/apt]"
	placeholderReference    = "[Opcional]"
	placeholderPhone        = "[Seu Telefone]"
	placeholderObservations = "[Opcional]"
)

// CheckoutDetails is everything the order message shows besides the items.
type CheckoutDetails struct {
	Customer    domain.Customer
	DeliveryFee float64
	IncludeFee  bool
	Total       float64
}

func itemLines(b *strings.Builder, items []domain.OrderItem) {
	for i, item := range items {
		description := ""
		if item.Description != "" {
			description = " (" + item.Description + ")"
		}
		fmt.Fprintf(b, "%d. %dx %s%s - R$ %s\n", i+1, item.Quantity, item.Name, description, domain.FormatBRL(item.Subtotal()))
	}
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

// CheckoutMessage is the customer -> shop text sent when an order is placed.
func CheckoutMessage(items []domain.OrderItem, details CheckoutDetails) string {
	var b strings.Builder
	b.WriteString("Olá! Gostaria de fazer um pedido:\n\n")
	itemLines(&b, items)
	b.WriteString("\n")

	if details.IncludeFee && details.DeliveryFee > 0 {
		fmt.Fprintf(&b, "Subtotal: R$ %s\n", domain.FormatBRL(details.Total-details.DeliveryFee))
		fmt.Fprintf(&b, "Taxa de entrega: R$ %s\n", domain.FormatBRL(details.DeliveryFee))
	}
	fmt.Fprintf(&b, "*Total: R$ %s*\n\n", domain.FormatBRL(details.Total))

	c := details.Customer
	if c.PaymentMethod != "" {
		fmt.Fprintf(&b, "Forma de pagamento: %s\n\n", c.PaymentMethod)
	}

	b.WriteString("Dados para entrega:\n")
	fmt.Fprintf(&b, "Nome: %s\n", c.Name)
	fmt.Fprintf(&b, "Bairro: %s\n", c.Neighborhood)
	fmt.Fprintf(&b, "Endereço: %s\n", orDefault(c.Address, placeholderAddress))
	fmt.Fprintf(&b, "Ponto de referência: %s\n", orDefault(c.Reference, placeholderReference))
	fmt.Fprintf(&b, "Telefone: %s\n\n", orDefault(c.Phone, placeholderPhone))
	fmt.Fprintf(&b, "Observações: %s", orDefault(c.Observations, placeholderObservations))

	return b.String()
}

// ConfirmationMessage tells the customer the order was accepted.
func ConfirmationMessage(order domain.Order, shopName string) string {
	var b strings.Builder
	b.WriteString("✅ *Pedido confirmado!*\n\n")
	fmt.Fprintf(&b, "Olá, %s! Seu pedido #%d foi confirmado.\n\n", order.CustomerName, order.ID)
	b.WriteString("📋 *Itens:*\n")
	itemLines(&b, order.Items)
	b.WriteString("\n")
	fmt.Fprintf(&b, "💰 *Total: R$ %s*\n", domain.FormatBRL(order.TotalAmount))

	address := order.CustomerAddress
	if order.CustomerNeighborhood != "" {
		if address != "" {
			address += " - "
		}
		address += order.CustomerNeighborhood
	}
	fmt.Fprintf(&b, "📍 *Endereço:* %s\n\n", address)

	b.WriteString("⏱️ Tempo estimado: 30-45 minutos.\n")
	fmt.Fprintf(&b, "Obrigado pela preferência! %s", shopName)
	return b.String()
}

// DeliveryMessage tells the customer the order left the shop.
func DeliveryMessage(order domain.Order, shopName string) string {
	var b strings.Builder
	b.WriteString("🛵 *Seu pedido saiu para entrega!*\n\n")
	fmt.Fprintf(&b, "Olá, %s! O pedido #%d já está a caminho.\n", order.CustomerName, order.ID)
	b.WriteString("⏱️ Previsão de chegada: 15-30 minutos.\n\n")
	fmt.Fprintf(&b, "Obrigado pela preferência! %s", shopName)
	return b.String()
}
