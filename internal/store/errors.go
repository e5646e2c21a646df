package store

import (
	"errors"
	"fmt"
)

// NotFoundError indicates a catalog mutation targeted a row that does
// not exist. Returned by UpdateStock and DeleteProduct, which check the
// affected-row count instead of silently no-opping.
type NotFoundError struct {
	Entity string // "product" or "customer"
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

// ReferencedError indicates a product could not be deleted because
// historical order line items still reference it. Deleting such a
// product would orphan captured prices, so the store rejects it.
type ReferencedError struct {
	ProductID int64
}

func (e *ReferencedError) Error() string {
	return fmt.Sprintf("product %d is referenced by existing orders and cannot be deleted", e.ProductID)
}

// IsNotFound returns true if the error is a catalog not-found error.
// Uses errors.As to handle wrapped errors.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsReferenced returns true if the error is a referenced-product error.
// Uses errors.As to handle wrapped errors.
func IsReferenced(err error) bool {
	var re *ReferencedError
	return errors.As(err, &re)
}
