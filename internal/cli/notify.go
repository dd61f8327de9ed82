package cli

import (
	"github.com/spf13/cobra"

	"order-desk/internal/microservices/notificator"
)

// NewNotifyCommand creates the notify command.
func NewNotifyCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "notify",
		Short: "Subscribe to order events and log them",
		Long: `Consume order.placed and order.done events from the notifications queue.

Requires rabbitmq.host in the config (or RABBITMQ_HOST).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, lg, err := loadConfig(rootOpts, cmd, "order-desk-notify")
			if err != nil {
				return err
			}
			return notificator.Start(cmd.Context(), cfg.RabbitMQ, lg)
		},
	}
}
