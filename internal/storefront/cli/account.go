package cli

import (
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/storefront/pkg/shopsdk"
)

func (s *Shell) newAddressesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "addresses",
		Short: "Manage saved shipping addresses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			addrs, err := s.core.Account.ListAddresses(cmd.Context())
			if err != nil {
				return err
			}
			if len(addrs) == 0 {
				s.printer.Info("No saved addresses")
				return nil
			}

			t := NewTable(s.printer.Out(), "ID", "Title", "Address", "City", "Postal Code")
			for _, a := range addrs {
				t.AddRow(strconv.FormatInt(a.ID, 10), a.Title, a.FullAddress, a.City, a.PostalCode)
			}
			return t.Render()
		},
	}

	var in shopsdk.AddressInput
	add := &cobra.Command{
		Use:   "add",
		Short: "Save a new address",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if in.FullAddress == "" {
				return errors.New("--address is required")
			}
			addr, err := s.core.Account.CreateAddress(cmd.Context(), in)
			if err != nil {
				return err
			}
			s.printer.Success("Saved address %d", addr.ID)
			return nil
		},
	}
	add.Flags().StringVar(&in.Title, "title", "", "label, e.g. Home")
	add.Flags().StringVar(&in.FullAddress, "address", "", "street address")
	add.Flags().StringVar(&in.City, "city", "", "city")
	add.Flags().StringVar(&in.PostalCode, "postal-code", "", "postal code")

	remove := &cobra.Command{
		Use:     "remove <addressId>",
		Aliases: []string{"rm"},
		Short:   "Delete a saved address",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("address id", args[0])
			if err != nil {
				return err
			}
			if err := s.core.Account.DeleteAddress(cmd.Context(), id); err != nil {
				return err
			}
			s.printer.Success("Deleted address %d", id)
			return nil
		},
	}

	cmd.AddCommand(add, remove)
	return cmd
}
