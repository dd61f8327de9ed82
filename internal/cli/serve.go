package cli

import (
	"github.com/spf13/cobra"

	"order-desk/internal/microservices/order"
)

type serveOptions struct {
	addr    string
	storage string
}

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the order and kitchen web service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, lg, err := loadConfig(rootOpts, cmd, "order-desk")
			if err != nil {
				return err
			}
			if opts.addr != "" {
				cfg.Server.Addr = opts.addr
			}
			if opts.storage != "" {
				cfg.Storage.Backend = opts.storage
				if err := cfg.Validate(); err != nil {
					return err
				}
			}
			return order.Run(cmd.Context(), cfg, lg)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "", "listen address, overrides server.addr")
	cmd.Flags().StringVar(&opts.storage, "storage", "", "order store backend (sql|file), overrides storage.backend")

	return cmd
}
