package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"pastelaria/domain"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	NotificationsExchange = "notifications"
	NotificationsQueue    = "notifications.q"
)

// RabbitNotifier hands customer notifications to the messaging dispatcher.
type RabbitNotifier struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

func DialRabbitNotifier(url string) (*RabbitNotifier, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := ch.ExchangeDeclare(NotificationsExchange, "fanout", true, false, false, false, nil); err != nil {
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}
	if _, err := ch.QueueDeclare(NotificationsQueue, true, false, false, false, nil); err != nil {
		conn.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}
	if err := ch.QueueBind(NotificationsQueue, "", NotificationsExchange, false, nil); err != nil {
		conn.Close()
		return nil, fmt.Errorf("bind queue: %w", err)
	}

	return &RabbitNotifier{conn: conn, ch: ch}, nil
}

func (n *RabbitNotifier) Dispatch(ctx context.Context, notification domain.Notification) error {
	body, err := json.Marshal(notification)
	if err != nil {
		return err
	}
	return n.ch.PublishWithContext(ctx, NotificationsExchange, "", false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		ContentType:  "application/json",
		Body:         body,
	})
}

func (n *RabbitNotifier) Close() {
	if n == nil {
		return
	}
	if n.ch != nil {
		_ = n.ch.Close()
	}
	if n.conn != nil {
		_ = n.conn.Close()
	}
}

// LogNotifier only records the notification; the operator opens the link by hand.
type LogNotifier struct{}

func (LogNotifier) Dispatch(ctx context.Context, notification domain.Notification) error {
	log.Printf("[notify] %s notification for order %d to %s: %s",
		notification.Kind, notification.OrderID, notification.Phone, notification.Link)
	return nil
}
