package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/shopkeeper/internal/order"
	"github.com/roach88/shopkeeper/internal/report"
)

// NewCreateOrderCommand creates the create-order command.
func NewCreateOrderCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "create-order <customer_id> <line>...",
		Short: "Create an order atomically",
		Long: `Create an order for a customer.

Each line is product_id:quantity, e.g.:

  shopkeeper create-order 1 2:3 5:1

Lines are applied in the order given. The whole order succeeds or fails
as one unit: if any product is missing or short on stock, no order is
recorded and no stock changes.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := formatter(rootOpts, cmd)

			customerID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return WrapExitError(ExitCommandError, fmt.Sprintf("invalid customer id %q", args[0]), err)
			}

			// Line tokens are validated before any storage access.
			lines, err := order.ParseLines(args[1:])
			if err != nil {
				return f.Fail(err)
			}

			st, _, err := openStore(rootOpts)
			if err != nil {
				return err
			}
			defer closeStore(st)

			engine := order.New(st, nil, nil)
			receipt, err := engine.CreateOrder(cmd.Context(), customerID, lines)
			if err != nil {
				return f.Fail(err)
			}

			return f.Success(
				fmt.Sprintf("Created order %d (ref %s, total %s)", receipt.OrderID, receipt.Reference, receipt.Total.StringFixed(2)),
				map[string]string{
					"id":        strconv.FormatInt(receipt.OrderID, 10),
					"reference": receipt.Reference,
					"total":     receipt.Total.StringFixed(2),
				},
			)
		},
	}
}

// NewListOrdersCommand creates the list-orders command.
func NewListOrdersCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list-orders",
		Short: "List orders with totals, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := formatter(rootOpts, cmd)

			st, _, err := openStore(rootOpts)
			if err != nil {
				return err
			}
			defer closeStore(st)

			summaries, err := report.Summaries(cmd.Context(), st)
			if err != nil {
				return f.Fail(err)
			}

			return f.Success(renderOrders(summaries), toOrderRows(summaries))
		},
	}
}
