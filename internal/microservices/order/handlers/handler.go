package handlers

import (
	"time"

	"order-desk/internal/common/logger"
	"order-desk/internal/microservices/order/service"
)

type Handler struct {
	OrderHandler   *OrderHandler
	KitchenHandler *KitchenHandler
}

// New wires the page and API handlers. pollInterval is how often the kitchen
// page refreshes its feed.
func New(s *service.Service, pollInterval time.Duration, lg *logger.Logger) *Handler {
	return &Handler{
		OrderHandler:   NewOrderHandler(s.OrderService, lg),
		KitchenHandler: NewKitchenHandler(s.OrderService, pollInterval, lg),
	}
}
