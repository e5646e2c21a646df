package cli

import (
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/shopspring/decimal"

	"github.com/roach88/shopkeeper/internal/catalog"
	"github.com/roach88/shopkeeper/internal/report"
)

// Golden files live in testdata/golden; regenerate with:
//
//	go test ./internal/cli -update

func golden(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestRenderProducts(t *testing.T) {
	products := []catalog.Product{
		{ID: 1, Name: "Espresso Beans", Price: decimal.RequireFromString("12.50"), Stock: 40},
		{ID: 2, Name: "Filter Paper", Price: decimal.RequireFromString("3.99"), Stock: 180},
		{ID: 3, Name: "Ceramic Mug", Price: decimal.RequireFromString("9.00"), Stock: 25},
	}

	golden(t).Assert(t, "products", []byte(renderProducts(products)))
}

func TestRenderProducts_Empty(t *testing.T) {
	golden(t).Assert(t, "products_empty", []byte(renderProducts(nil)))
}

func TestRenderCustomers(t *testing.T) {
	customers := []catalog.Customer{
		{ID: 1, Name: "Ada Lovelace", Email: "ada@example.com"},
		{ID: 2, Name: "Grace Hopper", Email: "grace@example.net"},
	}

	golden(t).Assert(t, "customers", []byte(renderCustomers(customers)))
}

func TestRenderCustomers_Empty(t *testing.T) {
	golden(t).Assert(t, "customers_empty", []byte(renderCustomers(nil)))
}

func TestRenderOrders(t *testing.T) {
	summaries := []report.Summary{
		{
			OrderID:      2,
			Reference:    "ref-2",
			CreatedAt:    time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC),
			CustomerName: "Grace Hopper",
			Total:        decimal.RequireFromString("47.50"),
		},
		{
			OrderID:      1,
			Reference:    "ref-1",
			CreatedAt:    time.Date(2026, 2, 28, 18, 0, 0, 0, time.UTC),
			CustomerName: "Ada Lovelace",
			Total:        decimal.RequireFromString("12.50"),
		},
	}

	golden(t).Assert(t, "orders", []byte(renderOrders(summaries)))
}

func TestRenderOrders_Empty(t *testing.T) {
	golden(t).Assert(t, "orders_empty", []byte(renderOrders(nil)))
}
