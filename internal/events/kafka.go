package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/marcelomiracles/storefront-service/internal/config"
	"github.com/marcelomiracles/storefront-service/internal/entities"

	"github.com/segmentio/kafka-go"
)

// OrderPublisher пишет событие о каждом сохранённом заказе в топик.
// Доставка best-effort: ошибку обрабатывает вызывающая сторона.
type OrderPublisher struct {
	writer *kafka.Writer
}

func NewOrderPublisher(cfg config.Kafka) *OrderPublisher {
	return &OrderPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
	}
}

type orderItemEvent struct {
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Quantity int    `json:"quantity"`
}

type orderEvent struct {
	OrderID   int64            `json:"order_id"`
	UserID    int64            `json:"user_id"`
	Username  string           `json:"username,omitempty"`
	Name      string           `json:"name"`
	Phone     string           `json:"phone"`
	Items     []orderItemEvent `json:"items"`
	Total     int              `json:"total"`
	CreatedAt time.Time        `json:"created_at"`
}

func (p *OrderPublisher) Publish(ctx context.Context, order entities.Order) error {
	event := orderEvent{
		OrderID:   order.ID,
		UserID:    order.UserID,
		Username:  order.Username,
		Name:      order.Name,
		Phone:     order.Phone,
		Total:     order.Total,
		CreatedAt: order.CreatedAt,
	}
	for _, item := range order.Items {
		event.Items = append(event.Items, orderItemEvent(item))
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal order event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(order.ID, 10)),
		Value: data,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write order event: %w", err)
	}
	return nil
}

func (p *OrderPublisher) Close() error {
	return p.writer.Close()
}
