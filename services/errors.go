package services

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the services. Handlers map these to
// HTTP statuses; the messages are user-facing.
var (
	ErrInvalidQuantity   = errors.New("quantity must be 1 or greater")
	ErrProductNotFound   = errors.New("product not found")
	ErrCartItemNotFound  = errors.New("item is not in the cart")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrSellerExists      = errors.New("a seller profile or application already exists")
	ErrProfileNotFound   = errors.New("seller profile not found")
	ErrInvalidTransition = errors.New("seller status transition not allowed")
	ErrNotSeller         = errors.New("caller is not a seller")
	ErrSellerNotApproved = errors.New("seller profile is not approved")
	ErrCategoryNotFound  = errors.New("category not found")
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidStatus     = errors.New("invalid order status")
)

// StockError reports insufficient stock for a specific product.
type StockError struct {
	ProductName string
}

func (e *StockError) Error() string {
	return fmt.Sprintf("not enough stock for %q", e.ProductName)
}

// UnavailableError reports that a product is no longer published.
type UnavailableError struct {
	ProductName string
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("product %q is no longer available", e.ProductName)
}
