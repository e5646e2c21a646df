package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewAddCustomerCommand creates the add-customer command.
func NewAddCustomerCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add-customer <name> <email>",
		Short: "Add a customer",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := formatter(rootOpts, cmd)

			st, _, err := openStore(rootOpts)
			if err != nil {
				return err
			}
			defer closeStore(st)

			id, err := st.AddCustomer(cmd.Context(), args[0], args[1])
			if err != nil {
				return f.Fail(err)
			}

			return f.Success(
				fmt.Sprintf("Added customer %d", id),
				map[string]int64{"id": id},
			)
		},
	}
}

// NewListCustomersCommand creates the list-customers command.
func NewListCustomersCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list-customers",
		Short: "List customers in insertion order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := formatter(rootOpts, cmd)

			st, _, err := openStore(rootOpts)
			if err != nil {
				return err
			}
			defer closeStore(st)

			customers, err := st.ListCustomers(cmd.Context())
			if err != nil {
				return f.Fail(err)
			}

			return f.Success(renderCustomers(customers), customers)
		},
	}
}
