package notificator

import (
	"context"
	"fmt"

	"order-desk/internal/common/logger"
	"order-desk/internal/config"
	"order-desk/internal/connections/rabbitmq"
	"order-desk/internal/microservices/notificator/service"
)

// Start subscribes to order events and logs them until ctx is cancelled.
func Start(ctx context.Context, cfg config.RabbitMQConfig, lg *logger.Logger) error {
	if !cfg.Enabled() {
		return fmt.Errorf("rabbitmq.host is not configured")
	}
	client, err := rabbitmq.Dial(cfg)
	if err != nil {
		return fmt.Errorf("rabbitmq dial: %w", err)
	}
	defer client.Close()

	if err := client.DeclareNotifications(); err != nil {
		return err
	}
	deliveries, err := client.Consume(rabbitmq.NotificationsQueue, "order-desk-notify", 10)
	if err != nil {
		return fmt.Errorf("consume %s: %w", rabbitmq.NotificationsQueue, err)
	}

	lg.Info("notificator_started", map[string]any{"queue": rabbitmq.NotificationsQueue})
	svc := service.New(deliveries, lg)
	svc.NotificatorService.Notify(ctx)
	lg.Info("notificator_stopped", nil)
	return nil
}
