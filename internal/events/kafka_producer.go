package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go-warehouse-ws/internal/model"

	"github.com/segmentio/kafka-go"
)

// OrderEvent is the message published on order lifecycle changes, consumed
// by downstream connector integrations.
type OrderEvent struct {
	Type      string            `json:"type"` // order_created, order_status_changed
	OrderID   int64             `json:"orderId"`
	OrderRef  string            `json:"orderRef"`
	Status    model.OrderStatus `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
}

type Publisher interface {
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error
	Close() error
}

type kafkaPublisher struct {
	writer *kafka.Writer
}

// NewKafkaPublisher builds a publisher for the given brokers and topic.
func NewKafkaPublisher(brokers []string, topic string) Publisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchSize:    100,
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
		Compression:  kafka.Snappy,
	}
	return &kafkaPublisher{writer: writer}
}

func (p *kafkaPublisher) PublishOrderEvent(ctx context.Context, event *OrderEvent) error {
	eventJSON, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal order event: %w", err)
	}

	message := kafka.Message{
		Key:   []byte(fmt.Sprintf("%d", event.OrderID)),
		Value: eventJSON,
		Time:  event.Timestamp,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(event.Type)},
		},
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := p.writer.WriteMessages(ctx, message); err != nil {
		return fmt.Errorf("failed to write order event to kafka: %w", err)
	}
	return nil
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}

// noopPublisher is used when no brokers are configured.
type noopPublisher struct{}

func NewNoopPublisher() Publisher { return noopPublisher{} }

func (noopPublisher) PublishOrderEvent(ctx context.Context, event *OrderEvent) error { return nil }
func (noopPublisher) Close() error                                                   { return nil }
