package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

func (s *Shell) newOrdersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "List, cancel and download orders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			orders, err := s.core.Account.ListOrders(cmd.Context())
			if err != nil {
				return err
			}
			if len(orders) == 0 {
				s.printer.Info("No orders yet")
				return nil
			}

			t := NewTable(s.printer.Out(), "ID", "Placed", "Status", "Items", "Total")
			for _, o := range orders {
				t.AddRow(
					strconv.FormatInt(o.ID, 10),
					o.CreatedAt.Format("2006-01-02"),
					s.printer.StatusBadge(o.Status.String()),
					strconv.Itoa(len(o.Items)),
					money(o.TotalAmount),
				)
			}
			return t.Render()
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List your orders",
		Args:  cobra.NoArgs,
		RunE:  cmd.RunE,
	}

	cancel := &cobra.Command{
		Use:   "cancel <orderId>",
		Short: "Cancel a pending or processing order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("order id", args[0])
			if err != nil {
				return err
			}
			if err := s.core.Account.CancelOrder(cmd.Context(), id); err != nil {
				return err
			}
			s.printer.Success("Order %d cancelled", id)
			return nil
		},
	}

	var output string
	invoice := &cobra.Command{
		Use:   "invoice <orderId>",
		Short: "Download an order invoice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("order id", args[0])
			if err != nil {
				return err
			}
			inv, err := s.core.Account.DownloadInvoice(cmd.Context(), id)
			if err != nil {
				return err
			}

			path := output
			if path == "" {
				path = fmt.Sprintf("invoice-%d.pdf", id)
			}
			if err := os.WriteFile(path, inv.Data, 0o644); err != nil {
				return fmt.Errorf("writing invoice: %w", err)
			}
			s.printer.Success("Saved invoice to %s", path)
			return nil
		},
	}
	invoice.Flags().StringVarP(&output, "output", "o", "", "file to write (default invoice-<id>.pdf)")

	cmd.AddCommand(list, cancel, invoice)
	return cmd
}
