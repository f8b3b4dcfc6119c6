package cli

import (
	"strconv"

	"github.com/spf13/cobra"
)

func (s *Shell) newFavoritesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "favorites",
		Aliases: []string{"favs"},
		Short:   "List and toggle favorite products",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := s.core.Favorites.Load(cmd.Context())
			if err != nil {
				return err
			}
			if len(items) == 0 {
				s.printer.Info("No favorites yet")
				return nil
			}

			t := NewTable(s.printer.Out(), "Product", "Name", "Price")
			for _, f := range items {
				t.AddRow(strconv.FormatInt(f.ProductID, 10), f.ProductName, money(f.ProductPrice))
			}
			return t.Render()
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List favorites",
		Args:  cobra.NoArgs,
		RunE:  cmd.RunE,
	}

	toggle := &cobra.Command{
		Use:   "toggle <productId>",
		Short: "Add or remove a favorite",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("product id", args[0])
			if err != nil {
				return err
			}
			on, err := s.core.Favorites.ToggleFavorite(cmd.Context(), id)
			if err != nil {
				return err
			}
			if on {
				s.printer.Success("Added product %d to favorites", id)
			} else {
				s.printer.Success("Removed product %d from favorites", id)
			}
			return nil
		},
	}

	cmd.AddCommand(list, toggle)
	return cmd
}
