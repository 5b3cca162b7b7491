// Package kafka publishes order change notifications to a Kafka topic.
// Publishing is fire-and-forget from the caller's point of view: command
// handlers bound the call with a short deadline and log failures instead of
// failing the operation that produced the change.
package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"fulfillment/internal/core/domain/model/order"

	"github.com/segmentio/kafka-go"
)

// orderChangedMessage is the wire payload of an order change notification.
// Consumers key on OrderID; messages for the same order land on the same
// partition, so per-order ordering is preserved.
type orderChangedMessage struct {
	OrderID      string    `json:"order_id"`
	BuyerID      string    `json:"buyer_id"`
	SellerID     string    `json:"seller_id"`
	Status       string    `json:"status"`
	PickupZone   string    `json:"pickup_zone"`
	DeliveryZone string    `json:"delivery_zone"`
	Version      int       `json:"version"`
	OccurredAt   time.Time `json:"occurred_at"`
}

func newOrderChangedMessage(ord *order.Order) orderChangedMessage {
	return orderChangedMessage{
		OrderID:      ord.ID().String(),
		BuyerID:      ord.BuyerID().String(),
		SellerID:     ord.SellerID().String(),
		Status:       ord.Status().String(),
		PickupZone:   ord.PickupAddress().Zone().Code(),
		DeliveryZone: ord.DeliveryAddress().Zone().Code(),
		Version:      ord.Version(),
		OccurredAt:   time.Now().UTC(),
	}
}

// Publisher implements ports.EventPublisher on a Kafka topic.
type Publisher struct {
	writer *kafka.Writer
	logger *slog.Logger
}

// NewPublisher creates a publisher writing to the given broker and topic.
// Messages are keyed by order id and balanced with hashing so consumers see
// per-order changes in order.
func NewPublisher(brokerAddress, topic string, logger *slog.Logger) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokerAddress),
			Topic:    topic,
			Balancer: &kafka.Hash{},
		},
		logger: logger.With("component", "kafka_publisher"),
	}
}

// PublishOrderChanged writes one order change notification.
func (p *Publisher) PublishOrderChanged(ctx context.Context, ord *order.Order) error {
	if err := ord.Validate(); err != nil {
		return err
	}

	payload, err := json.Marshal(newOrderChangedMessage(ord))
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(ord.ID().String()),
		Value: payload,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.ErrorContext(ctx, "failed to publish order change",
			"order_id", ord.ID().String(),
			"status", ord.Status().String(),
			"error", err)
		return err
	}

	p.logger.DebugContext(ctx, "published order change",
		"order_id", ord.ID().String(),
		"status", ord.Status().String())
	return nil
}

// Close shuts down the underlying Kafka writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
