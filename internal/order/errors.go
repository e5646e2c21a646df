package order

import (
	"errors"
	"fmt"
)

// OrderError represents a failure detected while applying an order.
//
// Order errors include:
//   - Product not found: a requested line references an unknown product
//   - Insufficient stock: a requested quantity exceeds what is available
//   - Customer not found: the order's owner fails the foreign-key check
//
// Any OrderError raised during CreateOrder aborts the entire transaction;
// no partial order and no stock change survives.
type OrderError struct {
	// Code identifies the error category.
	Code OrderErrorCode

	// Message is a human-readable description.
	Message string

	// ProductID identifies the offending product (for product errors).
	ProductID int64

	// Requested is the quantity asked for (for stock errors).
	Requested int64

	// Available is the stock on hand at check time (for stock errors).
	Available int64
}

// OrderErrorCode categorizes order errors.
type OrderErrorCode string

const (
	// ErrCodeProductNotFound indicates a line references an unknown product.
	ErrCodeProductNotFound OrderErrorCode = "PRODUCT_NOT_FOUND"

	// ErrCodeInsufficientStock indicates a line asks for more than is on hand.
	ErrCodeInsufficientStock OrderErrorCode = "INSUFFICIENT_STOCK"

	// ErrCodeCustomerNotFound indicates the order references an unknown customer.
	ErrCodeCustomerNotFound OrderErrorCode = "CUSTOMER_NOT_FOUND"
)

// Error implements the error interface.
func (e *OrderError) Error() string {
	if e.ProductID != 0 {
		return fmt.Sprintf("%s: %s (product=%d)", e.Code, e.Message, e.ProductID)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ValidationError represents malformed order input rejected before any
// storage access: bad line syntax, a zero quantity, or an empty line set.
type ValidationError struct {
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}

// IsProductNotFound returns true if the error is a product not-found error.
// Uses errors.As to handle wrapped errors.
func IsProductNotFound(err error) bool {
	var oe *OrderError
	if errors.As(err, &oe) {
		return oe.Code == ErrCodeProductNotFound
	}
	return false
}

// IsInsufficientStock returns true if the error is an insufficient-stock error.
// Uses errors.As to handle wrapped errors.
func IsInsufficientStock(err error) bool {
	var oe *OrderError
	if errors.As(err, &oe) {
		return oe.Code == ErrCodeInsufficientStock
	}
	return false
}

// IsCustomerNotFound returns true if the error is a customer not-found error.
// Uses errors.As to handle wrapped errors.
func IsCustomerNotFound(err error) bool {
	var oe *OrderError
	if errors.As(err, &oe) {
		return oe.Code == ErrCodeCustomerNotFound
	}
	return false
}

// IsValidation returns true if the error is an input validation error.
// Uses errors.As to handle wrapped errors.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// NewProductNotFoundError creates an OrderError for an unknown product.
func NewProductNotFoundError(productID int64) *OrderError {
	return &OrderError{
		Code:      ErrCodeProductNotFound,
		Message:   fmt.Sprintf("product %d not found", productID),
		ProductID: productID,
	}
}

// NewInsufficientStockError creates an OrderError for an oversold line.
// The message always carries the quantity actually available at check time.
func NewInsufficientStockError(productID, requested, available int64) *OrderError {
	return &OrderError{
		Code:      ErrCodeInsufficientStock,
		Message:   fmt.Sprintf("insufficient stock for product %d: %d available, %d requested", productID, available, requested),
		ProductID: productID,
		Requested: requested,
		Available: available,
	}
}

// NewCustomerNotFoundError creates an OrderError for an unknown customer.
func NewCustomerNotFoundError(customerID int64) *OrderError {
	return &OrderError{
		Code:    ErrCodeCustomerNotFound,
		Message: fmt.Sprintf("customer %d not found", customerID),
	}
}
