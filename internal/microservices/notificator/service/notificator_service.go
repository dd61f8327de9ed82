package service

import (
	"context"
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"

	"order-desk/internal/common/logger"
	"order-desk/internal/microservices/order/domain/dao"
)

// NotificatorService logs every order event delivered to the notifications
// queue. Receipt printers and audit feeds attach here.
type NotificatorService struct {
	deliveries <-chan amqp.Delivery
	lg         *logger.Logger
}

func NewNotificatorService(deliveries <-chan amqp.Delivery, lg *logger.Logger) *NotificatorService {
	return &NotificatorService{deliveries: deliveries, lg: lg}
}

// Notify consumes until ctx is done or the delivery channel closes.
func (ns *NotificatorService) Notify(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case d, ok := <-ns.deliveries:
			if !ok {
				ns.lg.Info("notifications_channel_closed", nil)
				return
			}
			ns.handle(d)
		}
	}
}

func (ns *NotificatorService) handle(d amqp.Delivery) {
	var ev dao.OrderEvent
	if err := json.Unmarshal(d.Body, &ev); err != nil {
		ns.lg.Error("order_event_decode_failed", err, map[string]any{"message_id": d.MessageId})
		// malformed messages are dropped, not redelivered
		_ = d.Nack(false, false)
		return
	}

	ns.lg.Info("order_event_received", map[string]any{
		"event_type":    ev.EventType,
		"order_id":      ev.OrderID,
		"status":        ev.Status,
		"customer_name": ev.CustomerName,
		"table":         ev.Table,
		"item_count":    ev.ItemCount,
		"message_id":    d.MessageId,
	})
	_ = d.Ack(false)
}
