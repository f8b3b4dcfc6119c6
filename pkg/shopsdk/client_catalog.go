package shopsdk

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// ============================================================================
// Products
// ============================================================================

// ListProducts queries the public catalog.
func (c *Client) ListProducts(ctx context.Context, q ProductQuery) (*ProductPage, error) {
	var page ProductPage
	if err := c.call(ctx, http.MethodGet, "Products", q.values(), nil, &page, "Failed to load products."); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetProduct fetches one product with its live stock.
func (c *Client) GetProduct(ctx context.Context, id int64) (*Product, error) {
	var p Product
	if err := c.call(ctx, http.MethodGet, "Products/"+itoa(id), nil, nil, &p, "Failed to load product."); err != nil {
		return nil, err
	}
	return &p, nil
}

// ============================================================================
// Categories
// ============================================================================

// ListCategories returns every public category.
func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	var cats []Category
	if err := c.call(ctx, http.MethodGet, "Categories", nil, nil, &cats, "Failed to load categories."); err != nil {
		return nil, err
	}
	return cats, nil
}

func (q ProductQuery) values() url.Values {
	v := url.Values{}
	if q.SearchTerm != "" {
		v.Set("searchTerm", q.SearchTerm)
	}
	if q.CategoryID != 0 {
		v.Set("categoryId", itoa(q.CategoryID))
	}
	if q.SortBy != "" {
		v.Set("sortBy", q.SortBy)
	}
	if q.SortDirection != "" {
		v.Set("sortDirection", q.SortDirection)
	}
	if q.MinPrice > 0 {
		v.Set("minPrice", strconv.FormatFloat(q.MinPrice, 'f', -1, 64))
	}
	if q.MaxPrice > 0 {
		v.Set("maxPrice", strconv.FormatFloat(q.MaxPrice, 'f', -1, 64))
	}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.PageSize > 0 {
		v.Set("pageSize", strconv.Itoa(q.PageSize))
	}
	return v
}

func (p Pagination) values() url.Values {
	v := url.Values{}
	if p.Page > 0 {
		v.Set("Page", strconv.Itoa(p.Page))
	}
	if p.PageSize > 0 {
		v.Set("PageSize", strconv.Itoa(p.PageSize))
	}
	return v
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
