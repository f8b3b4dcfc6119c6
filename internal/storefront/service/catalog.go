package service

import (
	"context"

	"github.com/aussiebroadwan/storefront/pkg/shopsdk"
)

// CatalogService serves the public catalog.
type CatalogService struct {
	client *shopsdk.Client
}

func NewCatalogService(client *shopsdk.Client) *CatalogService {
	return &CatalogService{client: client}
}

// ListProducts returns one page of products matching q.
func (s *CatalogService) ListProducts(ctx context.Context, q shopsdk.ProductQuery) (*shopsdk.ProductPage, error) {
	return s.client.ListProducts(ctx, q)
}

// GetProduct returns a single product.
func (s *CatalogService) GetProduct(ctx context.Context, id int64) (*shopsdk.Product, error) {
	return s.client.GetProduct(ctx, id)
}

// ListCategories returns every category.
func (s *CatalogService) ListCategories(ctx context.Context) ([]shopsdk.Category, error) {
	return s.client.ListCategories(ctx)
}
