package store

import (
	"context"
	"fmt"

	"github.com/roach88/shopkeeper/internal/catalog"
)

// AddCustomer inserts a new customer and returns its generated ID.
// No uniqueness or format validation is applied to the email address.
func (s *Store) AddCustomer(ctx context.Context, name, email string) (int64, error) {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO customers (name, email)
		VALUES (?, ?)
	`, name, email)
	if err != nil {
		return 0, fmt.Errorf("add customer: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("add customer: last insert id: %w", err)
	}

	return id, nil
}

// ListCustomers returns all customers in insertion order.
// Returns an empty slice (not nil) if there are none.
func (s *Store) ListCustomers(ctx context.Context) ([]catalog.Customer, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, email
		FROM customers
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query customers: %w", err)
	}
	defer rows.Close()

	var customers []catalog.Customer
	for rows.Next() {
		var c catalog.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		customers = append(customers, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate customers: %w", err)
	}

	// Return empty slice instead of nil
	if customers == nil {
		customers = []catalog.Customer{}
	}

	return customers, nil
}
