// Package report produces read-only order summaries with computed
// totals. It never mutates state.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/roach88/shopkeeper/internal/store"
)

// Summary is one order in the report: identity, owner, and the total
// computed from captured line-item prices. Because totals come from the
// prices captured at order time, re-querying an old order reproduces the
// same total even after catalog price changes.
type Summary struct {
	OrderID      int64
	Reference    string
	CreatedAt    time.Time
	CustomerName string
	Total        decimal.Decimal
}

// Summaries returns one entry per order, most recent first.
//
// Totals are accumulated in Go with exact decimal arithmetic rather than
// summed in SQL, so captured prices never round-trip through floats.
// Returns an empty slice (not nil) if no orders exist.
func Summaries(ctx context.Context, st *store.Store) ([]Summary, error) {
	// The join fans out one row per line item; rows for the same order
	// are adjacent because the sort key is the order itself.
	rows, err := st.Query(ctx, `
		SELECT o.id, o.reference, o.created_at, c.name, oi.quantity, oi.price
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		JOIN order_items oi ON oi.order_id = o.id
		ORDER BY o.created_at DESC, o.id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query order summaries: %w", err)
	}
	defer rows.Close()

	var summaries []Summary
	var current *Summary
	for rows.Next() {
		var (
			orderID      int64
			reference    string
			createdAt    string
			customerName string
			quantity     int64
			price        string
		)
		if err := rows.Scan(&orderID, &reference, &createdAt, &customerName, &quantity, &price); err != nil {
			return nil, fmt.Errorf("scan order summary row: %w", err)
		}

		unitPrice, err := decimal.NewFromString(price)
		if err != nil {
			return nil, fmt.Errorf("order %d: parse captured price %q: %w", orderID, price, err)
		}
		lineTotal := unitPrice.Mul(decimal.NewFromInt(quantity))

		if current == nil || current.OrderID != orderID {
			ts, err := time.Parse(store.TimeLayout, createdAt)
			if err != nil {
				return nil, fmt.Errorf("order %d: parse created_at %q: %w", orderID, createdAt, err)
			}
			summaries = append(summaries, Summary{
				OrderID:      orderID,
				Reference:    reference,
				CreatedAt:    ts,
				CustomerName: customerName,
				Total:        decimal.Zero,
			})
			current = &summaries[len(summaries)-1]
		}
		current.Total = current.Total.Add(lineTotal)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order summaries: %w", err)
	}

	// Return empty slice instead of nil
	if summaries == nil {
		summaries = []Summary{}
	}

	return summaries, nil
}
