package rabbitmq

import (
	"os"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"order-desk/internal/config"
)

func TestURL(t *testing.T) {
	assert.Equal(t, "amqp://guest:guest@mq:5672/",
		URL(config.RabbitMQConfig{Host: "mq", User: "guest", Password: "guest", VHost: "/"}))
	assert.Equal(t, "amqps://u:p@mq:5671/kitchen",
		URL(config.RabbitMQConfig{Host: "mq", Port: 5671, User: "u", Password: "p", VHost: "kitchen", UseTLS: true}))
}

func TestNilClientPing(t *testing.T) {
	var c *Client
	assert.Error(t, c.Ping())
	c.Close()
}

func TestDialAndDeclare(t *testing.T) {
	host := os.Getenv("RABBITMQ_HOST")
	if host == "" {
		t.Skip("RabbitMQ not configured (RABBITMQ_HOST)")
	}
	port, _ := strconv.Atoi(os.Getenv("RABBITMQ_PORT"))
	c, err := Dial(config.RabbitMQConfig{Host: host, Port: port, User: "guest", Password: "guest"})
	if err != nil {
		t.Skipf("RabbitMQ not available: %v", err)
	}
	defer c.Close()

	require.NoError(t, c.Ping())
	require.NoError(t, c.DeclareNotifications())
	require.NoError(t, c.DeclareNotifications())
}
