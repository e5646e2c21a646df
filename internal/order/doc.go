// Package order implements the order transaction engine: validation of
// requested line items against current stock, price capture at order
// time, stock decrement, and atomic persistence of the whole order.
//
// CreateOrder is the only multi-statement transaction in the system.
// Its contract is all-or-nothing: a failure on any line rolls back the
// order row, every earlier line item, and every earlier stock decrement
// from the same call.
package order
