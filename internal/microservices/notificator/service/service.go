package service

import (
	amqp "github.com/rabbitmq/amqp091-go"

	"order-desk/internal/common/logger"
)

type Service struct {
	NotificatorService *NotificatorService
}

func New(deliveries <-chan amqp.Delivery, lg *logger.Logger) *Service {
	return &Service{NotificatorService: NewNotificatorService(deliveries, lg)}
}
