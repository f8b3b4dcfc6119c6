package http

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/aussiebroadwan/storefront/internal/storefront/service"
	"github.com/aussiebroadwan/storefront/pkg/httpx"
	"github.com/aussiebroadwan/storefront/pkg/shopsdk"
)

type CatalogHandler struct {
	Catalog *service.CatalogService
}

// HandleListProducts relays a filtered product listing.
//
//	@Summary	List products
//	@Tags		Catalog
//	@Produce	json
//	@Param		searchTerm		query		string	false	"Free text search"
//	@Param		categoryId		query		int		false	"Category filter"
//	@Param		sortBy			query		string	false	"name, price or createdAt"
//	@Param		sortDirection	query		string	false	"asc or desc"
//	@Param		minPrice		query		number	false	"Lower price bound"
//	@Param		maxPrice		query		number	false	"Upper price bound"
//	@Param		page			query		int		false	"Page number"
//	@Param		pageSize		query		int		false	"Page size"
//	@Success	200				{object}	shopsdk.ProductPage
//	@Failure	400				{object}	httpx.ErrorBody	"Bad query"
//	@Router		/v1/products [get].
func (h *CatalogHandler) HandleListProducts(w http.ResponseWriter, r *http.Request) {
	q, err := productQuery(r.URL.Query())
	if err != nil {
		writeBadRequest(w, err)
		return
	}

	page, err := h.Catalog.ListProducts(r.Context(), q)
	if err != nil {
		writeServiceError(w, r, err, "Failed to load products.")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, page)
}

// HandleGetProduct relays a single product.
//
//	@Summary	Get product
//	@Tags		Catalog
//	@Produce	json
//	@Param		id	path		int	true	"Product id"
//	@Success	200	{object}	shopsdk.Product
//	@Failure	404	{object}	httpx.ErrorBody	"Not found"
//	@Router		/v1/products/{id} [get].
func (h *CatalogHandler) HandleGetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	p, err := h.Catalog.GetProduct(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "Product not found.")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, p)
}

// HandleListCategories relays the category list.
//
//	@Summary	List categories
//	@Tags		Catalog
//	@Produce	json
//	@Success	200	{array}	shopsdk.Category
//	@Router		/v1/categories [get].
func (h *CatalogHandler) HandleListCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.Catalog.ListCategories(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "Failed to load categories.")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, cats)
}

func productQuery(v url.Values) (shopsdk.ProductQuery, error) {
	q := shopsdk.ProductQuery{
		SearchTerm:    v.Get("searchTerm"),
		SortBy:        v.Get("sortBy"),
		SortDirection: v.Get("sortDirection"),
	}

	var err error
	if q.CategoryID, err = queryInt64(v, "categoryId"); err != nil {
		return q, err
	}
	if q.MinPrice, err = queryFloat(v, "minPrice"); err != nil {
		return q, err
	}
	if q.MaxPrice, err = queryFloat(v, "maxPrice"); err != nil {
		return q, err
	}
	if q.Page, err = queryInt(v, "page"); err != nil {
		return q, err
	}
	if q.PageSize, err = queryInt(v, "pageSize"); err != nil {
		return q, err
	}
	return q, nil
}

func pagination(v url.Values) (shopsdk.Pagination, error) {
	var (
		p   shopsdk.Pagination
		err error
	)
	if p.Page, err = queryInt(v, "page"); err != nil {
		return p, err
	}
	if p.PageSize, err = queryInt(v, "pageSize"); err != nil {
		return p, err
	}
	return p, nil
}

func queryInt(v url.Values, key string) (int, error) {
	s := v.Get(key)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return n, nil
}

func queryInt64(v url.Values, key string) (int64, error) {
	s := v.Get(key)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return n, nil
}

func queryFloat(v url.Values, key string) (float64, error) {
	s := v.Get(key)
	if s == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return f, nil
}
