package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/roach88/shopkeeper/internal/catalog"
)

// AddProduct inserts a new product and returns its generated ID.
// Duplicate names are permitted; products are distinguished by ID only.
// Price and stock must be non-negative.
func (s *Store) AddProduct(ctx context.Context, name string, price decimal.Decimal, stock int64) (int64, error) {
	if price.IsNegative() {
		return 0, fmt.Errorf("add product: price must not be negative, got %s", price)
	}
	if stock < 0 {
		return 0, fmt.Errorf("add product: stock must not be negative, got %d", stock)
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO products (name, price, stock)
		VALUES (?, ?, ?)
	`, name, catalog.PriceText(price), stock)
	if err != nil {
		return 0, fmt.Errorf("add product: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("add product: last insert id: %w", err)
	}

	return id, nil
}

// ListProducts returns all products in insertion order.
// Returns an empty slice (not nil) if the catalog is empty.
func (s *Store) ListProducts(ctx context.Context) ([]catalog.Product, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, price, stock
		FROM products
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	var products []catalog.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}

	// Return empty slice instead of nil
	if products == nil {
		products = []catalog.Product{}
	}

	return products, nil
}

// UpdateStock overwrites a product's stock count. The new value is an
// absolute quantity, not a delta.
//
// Returns a NotFoundError if no product has the given ID. The affected-row
// check deliberately tightens the historical silent no-op.
func (s *Store) UpdateStock(ctx context.Context, productID, stock int64) error {
	if stock < 0 {
		return fmt.Errorf("update stock: stock must not be negative, got %d", stock)
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE products SET stock = ? WHERE id = ?
	`, stock, productID)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update stock: rows affected: %w", err)
	}
	if affected == 0 {
		return &NotFoundError{Entity: "product", ID: productID}
	}

	return nil
}

// DeleteProduct removes a product from the catalog.
//
// Returns a ReferencedError if historical order line items still
// reference the product (the foreign-key constraint rejects the delete),
// and a NotFoundError if no product has the given ID.
func (s *Store) DeleteProduct(ctx context.Context, productID int64) error {
	result, err := s.db.ExecContext(ctx, `
		DELETE FROM products WHERE id = ?
	`, productID)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey {
			return &ReferencedError{ProductID: productID}
		}
		return fmt.Errorf("delete product: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete product: rows affected: %w", err)
	}
	if affected == 0 {
		return &NotFoundError{Entity: "product", ID: productID}
	}

	return nil
}

// scanProduct scans a products row. The price column holds the exact
// decimal string written by AddProduct.
func scanProduct(rows *sql.Rows) (catalog.Product, error) {
	var p catalog.Product
	var price string

	if err := rows.Scan(&p.ID, &p.Name, &price, &p.Stock); err != nil {
		return catalog.Product{}, fmt.Errorf("scan product: %w", err)
	}

	d, err := decimal.NewFromString(price)
	if err != nil {
		return catalog.Product{}, fmt.Errorf("scan product %d: parse price %q: %w", p.ID, price, err)
	}
	p.Price = d

	return p, nil
}
