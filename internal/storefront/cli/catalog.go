package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/storefront/pkg/shopsdk"
)

func (s *Shell) newProductsCmd() *cobra.Command {
	var q shopsdk.ProductQuery

	cmd := &cobra.Command{
		Use:     "products",
		Aliases: []string{"catalog"},
		Short:   "Browse the product catalog",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := s.core.Catalog.ListProducts(cmd.Context(), q)
			if err != nil {
				return err
			}
			if len(page.Items) == 0 {
				s.printer.Info("No products found")
				return nil
			}

			t := NewTable(s.printer.Out(), "ID", "Name", "Category", "Price", "Stock")
			for _, p := range page.Items {
				stock := strconv.Itoa(p.StockQuantity)
				if p.StockQuantity == 0 {
					stock = "sold out"
				}
				t.AddRow(strconv.FormatInt(p.ID, 10), p.Name, p.CategoryName, money(p.Price), stock)
			}
			if err := t.Render(); err != nil {
				return err
			}
			if page.TotalPages > 1 {
				s.printer.Print("%s", s.printer.Dim(fmt.Sprintf("page %d of %d (%d products)", page.Page, page.TotalPages, page.TotalCount)))
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&q.SearchTerm, "search", "", "search term")
	f.Int64Var(&q.CategoryID, "category", 0, "category id")
	f.StringVar(&q.SortBy, "sort", "", "sort by: name, price, createdAt")
	f.StringVar(&q.SortDirection, "dir", "", "sort direction: asc, desc")
	f.Float64Var(&q.MinPrice, "min", 0, "minimum price")
	f.Float64Var(&q.MaxPrice, "max", 0, "maximum price")
	f.IntVar(&q.Page, "page", 0, "page number")
	f.IntVar(&q.PageSize, "page-size", 0, "page size")
	return cmd
}
