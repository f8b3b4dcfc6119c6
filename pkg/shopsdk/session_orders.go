package shopsdk

import (
	"context"
	"net/http"
)

// ============================================================================
// Addresses
// ============================================================================

// ListAddresses returns the address book.
func (s *Session) ListAddresses(ctx context.Context) ([]Address, error) {
	var addrs []Address
	if err := s.call(ctx, http.MethodGet, "Addresses", nil, nil, &addrs, "Failed to load addresses."); err != nil {
		return nil, err
	}
	return addrs, nil
}

// CreateAddress saves a new address.
func (s *Session) CreateAddress(ctx context.Context, in AddressInput) (*Address, error) {
	var addr Address
	if err := s.call(ctx, http.MethodPost, "Addresses", nil, in, &addr, "Failed to save address."); err != nil {
		return nil, err
	}
	return &addr, nil
}

// UpdateAddress replaces a saved address.
func (s *Session) UpdateAddress(ctx context.Context, id int64, in AddressInput) error {
	return s.call(ctx, http.MethodPut, "Addresses/"+itoa(id), nil, in, nil, "Failed to save address.")
}

// DeleteAddress removes a saved address.
func (s *Session) DeleteAddress(ctx context.Context, id int64) error {
	return s.call(ctx, http.MethodDelete, "Addresses/"+itoa(id), nil, nil, nil, "Failed to delete address.")
}

// ============================================================================
// Orders
// ============================================================================

// Checkout places an order for the current server cart.
func (s *Session) Checkout(ctx context.Context, req CheckoutRequest) (*Order, error) {
	var order Order
	if err := s.call(ctx, http.MethodPost, "Orders/checkout", nil, req, &order, "Checkout failed."); err != nil {
		return nil, err
	}
	return &order, nil
}

// ListOrders returns the customer's orders.
func (s *Session) ListOrders(ctx context.Context) ([]Order, error) {
	var orders []Order
	if err := s.call(ctx, http.MethodGet, "Orders", nil, nil, &orders, "Failed to load orders."); err != nil {
		return nil, err
	}
	return orders, nil
}

// CancelOrder asks the service to cancel an order.
func (s *Session) CancelOrder(ctx context.Context, id int64) error {
	path := "Orders/" + itoa(id) + "/cancel"
	return s.call(ctx, http.MethodPut, path, nil, CancelOrderRequest{OrderID: id}, nil, "Failed to cancel order.")
}

// DownloadInvoice fetches the invoice document of an order.
func (s *Session) DownloadInvoice(ctx context.Context, id int64) (*Invoice, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "Orders/"+itoa(id)+"/invoice", nil, nil)
	if err != nil {
		return nil, err
	}

	data, contentType, err := readBlob(resp, "Failed to download invoice.")
	if err != nil {
		return nil, err
	}

	return &Invoice{OrderID: id, ContentType: contentType, Data: data}, nil
}
