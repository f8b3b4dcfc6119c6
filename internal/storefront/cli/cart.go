package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/storefront/internal/storefront/domain"
)

func (s *Shell) newCartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Show and edit the cart",
		Long: `Show and edit the cart.

Signed out, the cart lives in local storage. Signing in merges it into the
account cart, keeping the larger quantity of each product.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cart, err := s.core.Cart.Load(cmd.Context())
			if err != nil {
				return err
			}
			return s.renderCart(cart)
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "Show the cart",
		Args:  cobra.NoArgs,
		RunE:  cmd.RunE,
	}

	var qty int
	add := &cobra.Command{
		Use:   "add <productId>",
		Short: "Set the quantity of a product in the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("product id", args[0])
			if err != nil {
				return err
			}
			cart, err := s.core.Cart.AddToCart(cmd.Context(), id, qty)
			if err != nil {
				return err
			}
			return s.renderCart(cart)
		},
	}
	add.Flags().IntVarP(&qty, "qty", "q", 1, "quantity")

	remove := &cobra.Command{
		Use:     "remove <lineId>",
		Aliases: []string{"rm"},
		Short:   "Remove a cart line",
		Long:    "Remove a cart line. Guest lines are identified by product id.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("line id", args[0])
			if err != nil {
				return err
			}
			cart, err := s.core.Cart.RemoveFromCart(cmd.Context(), id)
			if err != nil {
				return err
			}
			return s.renderCart(cart)
		},
	}

	cmd.AddCommand(list, add, remove)
	return cmd
}

func (s *Shell) renderCart(cart domain.Cart) error {
	if len(cart.Lines) == 0 {
		s.printer.Info("Your cart is empty")
		return nil
	}

	t := NewTable(s.printer.Out(), "Line", "Product", "Name", "Qty", "Price", "Total")
	for _, l := range cart.Lines {
		name := l.ProductName
		if l.Unavailable {
			name = s.printer.Dim("unavailable")
		}
		t.AddRow(
			strconv.FormatInt(l.ID, 10),
			strconv.FormatInt(l.ProductID, 10),
			name,
			strconv.Itoa(l.Quantity),
			money(l.ProductPrice),
			money(l.TotalPrice),
		)
	}
	if err := t.Render(); err != nil {
		return err
	}

	label := "Subtotal"
	if cart.Guest {
		label = "Subtotal (guest cart)"
	}
	s.printer.Print("%s: %s", label, s.printer.Bold(money(cart.Subtotal)))
	return nil
}

func parseID(name, arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q", name, arg)
	}
	return id, nil
}
