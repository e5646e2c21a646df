package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewInitDBCommand creates the init-db command.
func NewInitDBCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init-db",
		Short: "Initialize the database schema",
		Long: `Create the database file and schema if they do not already exist.

Safe to run repeatedly: the schema is applied with create-if-not-exists
semantics and is never destructive.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := formatter(rootOpts, cmd)

			st, cfg, err := openStore(rootOpts)
			if err != nil {
				return err
			}
			closeStore(st)

			return f.Success(
				fmt.Sprintf("Initialized database at %s", cfg.Database),
				map[string]string{"database": cfg.Database},
			)
		},
	}
}
