package order

import (
	"context"
	"fmt"

	"order-desk/internal/common/httpx"
	"order-desk/internal/common/logger"
	"order-desk/internal/config"
	"order-desk/internal/connections/rabbitmq"
	"order-desk/internal/connections/redisdb"
	"order-desk/internal/menu"
	"order-desk/internal/microservices/order/cache"
	"order-desk/internal/microservices/order/handlers"
	"order-desk/internal/microservices/order/repository"
	"order-desk/internal/microservices/order/service"

	notify "order-desk/internal/microservices/notificator/service"
)

// Run serves the order form, the kitchen display and the JSON API until ctx
// is cancelled. Redis and RabbitMQ are used only when configured; if either
// is unreachable at start the service runs without it.
func Run(ctx context.Context, cfg *config.Config, lg *logger.Logger) error {
	loc, err := cfg.Location()
	if err != nil {
		return fmt.Errorf("kitchen timezone: %w", err)
	}

	// Initialize repository
	repo, err := repository.Open(ctx, cfg, lg)
	if err != nil {
		return err
	}
	defer repo.Close()

	opts := []service.Option{service.WithLocation(loc)}

	if cfg.Redis.Enabled() {
		rdb, err := redisdb.Connect(ctx, cfg.Redis)
		if err != nil {
			lg.Error("redis_unavailable", err, map[string]any{"addr": cfg.Redis.Addr})
		} else {
			defer rdb.Close()
			opts = append(opts, service.WithFeedCache(cache.NewRedisFeedCache(rdb, cfg.Kitchen.PollInterval)))
			lg.Info("feed_cache_enabled", map[string]any{"addr": cfg.Redis.Addr})
		}
	}

	if cfg.RabbitMQ.Enabled() {
		client, err := rabbitmq.Dial(cfg.RabbitMQ)
		if err == nil {
			err = client.DeclareNotifications()
			if err != nil {
				client.Close()
			}
		}
		if err != nil {
			lg.Error("rabbitmq_unavailable", err, map[string]any{"host": cfg.RabbitMQ.Host})
		} else {
			defer client.Close()
			opts = append(opts, service.WithEvents(notify.NewPublisher(client)))
			lg.Info("order_events_enabled", map[string]any{"exchange": rabbitmq.NotificationsExchange})
		}
	}

	// Initialize service
	svc := service.New(*repo, menu.Default(), lg, opts...)
	h := handlers.New(svc, cfg.Kitchen.PollInterval, lg)

	srv := httpx.New(cfg.Server.Addr, handlers.Router(h, lg))
	lg.Info("service_started", map[string]any{"addr": cfg.Server.Addr, "storage": cfg.Storage.Backend})
	err = srv.Run(ctx)
	// flush queued events before the deferred broker close
	svc.OrderService.Close()
	if err != nil {
		return fmt.Errorf("http server: %w", err)
	}
	lg.Info("service_stopped", nil)
	return nil
}
