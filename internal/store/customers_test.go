package store

import (
	"context"
	"testing"
)

func TestAddCustomer_AssignsSequentialIDs(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	id1, err := s.AddCustomer(ctx, "ada", "ada@example.com")
	if err != nil {
		t.Fatalf("AddCustomer() failed: %v", err)
	}
	id2, err := s.AddCustomer(ctx, "grace", "grace@example.net")
	if err != nil {
		t.Fatalf("AddCustomer() failed: %v", err)
	}

	if id1 != 1 || id2 != 2 {
		t.Errorf("ids = (%d, %d), want (1, 2)", id1, id2)
	}
}

func TestAddCustomer_NoEmailValidation(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	// Neither format nor uniqueness is enforced on email
	if _, err := s.AddCustomer(ctx, "ada", "not-an-email"); err != nil {
		t.Errorf("AddCustomer(malformed email) failed: %v", err)
	}
	if _, err := s.AddCustomer(ctx, "grace", "not-an-email"); err != nil {
		t.Errorf("AddCustomer(duplicate email) failed: %v", err)
	}
}

func TestListCustomers_InsertionOrder(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	names := []string{"ada", "grace", "katherine"}
	for _, name := range names {
		if _, err := s.AddCustomer(ctx, name, name+"@example.com"); err != nil {
			t.Fatalf("AddCustomer(%q) failed: %v", name, err)
		}
	}

	customers, err := s.ListCustomers(ctx)
	if err != nil {
		t.Fatalf("ListCustomers() failed: %v", err)
	}
	if len(customers) != len(names) {
		t.Fatalf("got %d customers, want %d", len(customers), len(names))
	}
	for i, name := range names {
		if customers[i].Name != name {
			t.Errorf("customer %d name = %q, want %q", i, customers[i].Name, name)
		}
	}
}

func TestListCustomers_Empty(t *testing.T) {
	s := createTestStore(t)

	customers, err := s.ListCustomers(context.Background())
	if err != nil {
		t.Fatalf("ListCustomers() failed: %v", err)
	}
	if customers == nil {
		t.Error("expected empty slice, got nil")
	}
}
