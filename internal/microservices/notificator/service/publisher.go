package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"order-desk/internal/connections/rabbitmq"
	"order-desk/internal/microservices/order/domain/dao"
)

type confirmPublisher interface {
	Publish(ctx context.Context, exchange, key string, msg amqp.Publishing) error
}

// Publisher sends order events to the notifications fanout exchange.
type Publisher struct {
	client   confirmPublisher
	exchange string
}

func NewPublisher(client *rabbitmq.Client) *Publisher {
	return &Publisher{client: client, exchange: rabbitmq.NotificationsExchange}
}

func (p *Publisher) PublishOrderEvent(ctx context.Context, ev dao.OrderEvent) error {
	msg, err := newPublishing(ev)
	if err != nil {
		return err
	}
	// fanout ignores the key; it is set for consumers that log it
	if err := p.client.Publish(ctx, p.exchange, ev.EventType, msg); err != nil {
		return fmt.Errorf("failed to publish %s for order %d: %w", ev.EventType, ev.OrderID, err)
	}
	return nil
}

func newPublishing(ev dao.OrderEvent) (amqp.Publishing, error) {
	body, err := json.Marshal(ev)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("failed to marshal order event: %w", err)
	}
	return amqp.Publishing{
		DeliveryMode:  amqp.Persistent,
		ContentType:   "application/json",
		Type:          ev.EventType,
		Body:          body,
		MessageId:     uuid.NewString(),
		CorrelationId: strconv.FormatInt(ev.OrderID, 10),
		Timestamp:     ev.OccurredAt.UTC(),
		Headers: amqp.Table{
			"x-source": "order-desk",
		},
	}, nil
}
