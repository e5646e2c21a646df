package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/roach88/shopkeeper/internal/catalog"
	"github.com/roach88/shopkeeper/internal/report"
)

// Pure presentation: tabular text rendering of catalog and report data.
// No business logic lives here.

// createdAtLayout is the display format for order timestamps (always UTC).
const createdAtLayout = "2006-01-02 15:04:05"

// orderRow is the JSON-mode payload for a single order summary.
type orderRow struct {
	ID        int64  `json:"id"`
	Reference string `json:"reference"`
	CreatedAt string `json:"created_at"`
	Customer  string `json:"customer"`
	Total     string `json:"total"`
}

func toOrderRows(summaries []report.Summary) []orderRow {
	rows := make([]orderRow, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, orderRow{
			ID:        s.OrderID,
			Reference: s.Reference,
			CreatedAt: s.CreatedAt.UTC().Format(time.RFC3339),
			Customer:  s.CustomerName,
			Total:     s.Total.StringFixed(2),
		})
	}
	return rows
}

func renderProducts(products []catalog.Product) string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPRICE\tSTOCK")
	for _, p := range products {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\n", p.ID, p.Name, p.Price.StringFixed(2), p.Stock)
	}
	w.Flush()
	return strings.TrimRight(b.String(), "\n")
}

func renderCustomers(customers []catalog.Customer) string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL")
	for _, c := range customers {
		fmt.Fprintf(w, "%d\t%s\t%s\n", c.ID, c.Name, c.Email)
	}
	w.Flush()
	return strings.TrimRight(b.String(), "\n")
}

func renderOrders(summaries []report.Summary) string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCREATED AT\tCUSTOMER\tTOTAL\tREFERENCE")
	for _, s := range summaries {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			s.OrderID,
			s.CreatedAt.UTC().Format(createdAtLayout),
			s.CustomerName,
			s.Total.StringFixed(2),
			s.Reference,
		)
	}
	w.Flush()
	return strings.TrimRight(b.String(), "\n")
}
