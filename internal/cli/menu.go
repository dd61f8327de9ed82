package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"order-desk/internal/menu"
)

// NewMenuCommand creates the menu command.
func NewMenuCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Print the menu with item ids",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch format {
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(menu.Default().Categories())
			case "text":
				return printMenu(cmd.OutOrStdout(), menu.Default().Categories())
			default:
				return fmt.Errorf("invalid format %q: must be one of [text json]", format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "output format (text|json)")

	return cmd
}

func printMenu(w io.Writer, categories []menu.Category) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, c := range categories {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		fmt.Fprintf(tw, "%s\n", c.Name)
		for _, it := range c.Items {
			fmt.Fprintf(tw, "  %d\t%s\n", it.ID, it.Name)
		}
	}
	return tw.Flush()
}
