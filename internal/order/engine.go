package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/roach88/shopkeeper/internal/store"
)

// ReferenceGenerator produces order references.
// Implementations must return globally unique strings.
type ReferenceGenerator interface {
	NewReference() string
}

// UUIDv7Generator generates time-ordered UUIDs for order references.
type UUIDv7Generator struct{}

// NewReference returns a new UUIDv7 string.
func (UUIDv7Generator) NewReference() string {
	return uuid.Must(uuid.NewV7()).String()
}

// Receipt describes a successfully placed order.
type Receipt struct {
	OrderID   int64
	Reference string
	Total     decimal.Decimal
}

// Engine applies orders against the catalog. It is the sole writer of
// order and order-item rows, and the sole decrementer of product stock
// during order placement.
type Engine struct {
	store *store.Store
	refs  ReferenceGenerator
	now   func() time.Time
}

// New creates an order engine backed by the given store.
//
// refs and now may be nil, in which case the engine defaults to UUIDv7
// references and the wall clock. Tests inject deterministic values.
func New(st *store.Store, refs ReferenceGenerator, now func() time.Time) *Engine {
	if refs == nil {
		refs = UUIDv7Generator{}
	}
	if now == nil {
		now = time.Now
	}
	return &Engine{store: st, refs: refs, now: now}
}

// CreateOrder validates and applies an order as a single atomic unit.
//
// The creation timestamp is fixed once, at the start of the transaction.
// Lines are processed in caller-supplied order; duplicate references to
// the same product are not pre-aggregated, so each line is checked
// against the stock remaining after earlier lines in the same call.
// Each line captures the product's price as read inside the transaction,
// decoupling the order's value from later price changes.
//
// On any failure - unknown product, insufficient stock, unknown customer,
// storage error - the whole transaction rolls back: no order row, no line
// items, no stock change. The stock decrement is additionally guarded by
// a conditional update (stock >= quantity) whose affected-row count is
// checked, so concurrent writers can never push stock negative.
func (e *Engine) CreateOrder(ctx context.Context, customerID int64, lines []Line) (*Receipt, error) {
	if len(lines) == 0 {
		return nil, &ValidationError{Message: "at least one order line is required"}
	}

	createdAt := e.now().UTC().Format(store.TimeLayout)
	reference := e.refs.NewReference()

	tx, err := e.store.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("create order: begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	result, err := tx.ExecContext(ctx, `
		INSERT INTO orders (reference, customer_id, created_at)
		VALUES (?, ?, ?)
	`, reference, customerID, createdAt)
	if err != nil {
		// The store enforces orders.customer_id referentially; an unknown
		// customer surfaces here and fails the whole order.
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey {
			return nil, NewCustomerNotFoundError(customerID)
		}
		return nil, fmt.Errorf("create order: insert order: %w", err)
	}

	orderID, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("create order: last insert id: %w", err)
	}

	total := decimal.Zero
	for _, line := range lines {
		var priceStr string
		var stock int64
		err := tx.QueryRowContext(ctx, `
			SELECT price, stock FROM products WHERE id = ?
		`, line.ProductID).Scan(&priceStr, &stock)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, NewProductNotFoundError(line.ProductID)
		}
		if err != nil {
			return nil, fmt.Errorf("create order: read product %d: %w", line.ProductID, err)
		}

		if line.Quantity > stock {
			return nil, NewInsufficientStockError(line.ProductID, line.Quantity, stock)
		}

		price, err := decimal.NewFromString(priceStr)
		if err != nil {
			return nil, fmt.Errorf("create order: parse price %q for product %d: %w", priceStr, line.ProductID, err)
		}

		// Capture the price read above, verbatim. Later catalog price
		// changes must never alter this order's value.
		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, product_id, quantity, price)
			VALUES (?, ?, ?, ?)
		`, orderID, line.ProductID, line.Quantity, priceStr)
		if err != nil {
			return nil, fmt.Errorf("create order: insert line item for product %d: %w", line.ProductID, err)
		}

		// Conditional decrement: refuses to apply if stock would go
		// negative, regardless of what the read above observed.
		decResult, err := tx.ExecContext(ctx, `
			UPDATE products SET stock = stock - ? WHERE id = ? AND stock >= ?
		`, line.Quantity, line.ProductID, line.Quantity)
		if err != nil {
			return nil, fmt.Errorf("create order: decrement stock for product %d: %w", line.ProductID, err)
		}
		affected, err := decResult.RowsAffected()
		if err != nil {
			return nil, fmt.Errorf("create order: rows affected: %w", err)
		}
		if affected == 0 {
			return nil, NewInsufficientStockError(line.ProductID, line.Quantity, stock)
		}

		total = total.Add(price.Mul(decimal.NewFromInt(line.Quantity)))
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("create order: commit: %w", err)
	}

	slog.Debug("order created",
		"order_id", orderID,
		"reference", reference,
		"customer_id", customerID,
		"lines", len(lines),
		"total", total.String(),
	)

	return &Receipt{OrderID: orderID, Reference: reference, Total: total}, nil
}
