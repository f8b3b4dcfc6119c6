package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/storefront/internal/storefront/service"
	"github.com/aussiebroadwan/storefront/pkg/shopsdk"
)

func (s *Shell) newCheckoutCmd() *cobra.Command {
	var (
		in      service.CheckoutInput
		payment string
	)

	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Place an order for the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if in.AddressID == 0 {
				return errors.New("--address is required (see: storefrontctl addresses)")
			}
			in.PaymentMethod = shopsdk.PaymentMethod(payment)

			order, err := s.core.Checkout.Checkout(cmd.Context(), in)
			if err != nil {
				return err
			}

			s.printer.Success("Order %d placed", order.ID)
			if order.DiscountAmount > 0 {
				s.printer.Print("Discount: %s", money(order.DiscountAmount))
			}
			s.printer.Print("Total: %s", s.printer.Bold(money(order.TotalAmount)))
			s.printer.Print("Status: %s", s.printer.StatusBadge(order.Status.String()))
			return nil
		},
	}

	f := cmd.Flags()
	f.Int64Var(&in.AddressID, "address", 0, "saved address id")
	f.StringVar(&payment, "payment", string(shopsdk.PaymentMock), "payment method: Mock, PayPal")
	f.StringVar(&in.CouponCode, "coupon", "", "coupon code")
	f.BoolVar(&in.DropInvalidCoupon, "drop-invalid-coupon", false, "continue without the coupon when it is rejected")
	return cmd
}
