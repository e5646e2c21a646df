package cli

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// NewAddProductCommand creates the add-product command.
func NewAddProductCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add-product <name> <price> <stock>",
		Short: "Add a new product",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := formatter(rootOpts, cmd)

			price, err := decimal.NewFromString(args[1])
			if err != nil {
				return WrapExitError(ExitCommandError, fmt.Sprintf("invalid price %q", args[1]), err)
			}
			stock, err := strconv.ParseInt(args[2], 10, 64)
			if err != nil {
				return WrapExitError(ExitCommandError, fmt.Sprintf("invalid stock %q", args[2]), err)
			}

			st, _, err := openStore(rootOpts)
			if err != nil {
				return err
			}
			defer closeStore(st)

			id, err := st.AddProduct(cmd.Context(), args[0], price, stock)
			if err != nil {
				return f.Fail(err)
			}

			return f.Success(
				fmt.Sprintf("Added product %d", id),
				map[string]int64{"id": id},
			)
		},
	}
}

// NewListProductsCommand creates the list-products command.
func NewListProductsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list-products",
		Short: "List products in insertion order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := formatter(rootOpts, cmd)

			st, _, err := openStore(rootOpts)
			if err != nil {
				return err
			}
			defer closeStore(st)

			products, err := st.ListProducts(cmd.Context())
			if err != nil {
				return f.Fail(err)
			}

			return f.Success(renderProducts(products), products)
		},
	}
}

// NewUpdateStockCommand creates the update-stock command.
func NewUpdateStockCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "update-stock <id> <stock>",
		Short: "Overwrite a product's stock count",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := formatter(rootOpts, cmd)

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return WrapExitError(ExitCommandError, fmt.Sprintf("invalid product id %q", args[0]), err)
			}
			stock, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return WrapExitError(ExitCommandError, fmt.Sprintf("invalid stock %q", args[1]), err)
			}

			st, _, err := openStore(rootOpts)
			if err != nil {
				return err
			}
			defer closeStore(st)

			if err := st.UpdateStock(cmd.Context(), id, stock); err != nil {
				return f.Fail(err)
			}

			return f.Success(
				fmt.Sprintf("Updated stock for product %d", id),
				map[string]int64{"id": id, "stock": stock},
			)
		},
	}
}

// NewDeleteProductCommand creates the delete-product command.
func NewDeleteProductCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete-product <id>",
		Short: "Delete a product",
		Long: `Delete a product from the catalog.

Products referenced by existing order line items cannot be deleted;
captured prices on historical orders must stay resolvable.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := formatter(rootOpts, cmd)

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return WrapExitError(ExitCommandError, fmt.Sprintf("invalid product id %q", args[0]), err)
			}

			st, _, err := openStore(rootOpts)
			if err != nil {
				return err
			}
			defer closeStore(st)

			if err := st.DeleteProduct(cmd.Context(), id); err != nil {
				return f.Fail(err)
			}

			return f.Success(
				fmt.Sprintf("Deleted product %d", id),
				map[string]int64{"id": id},
			)
		},
	}
}
