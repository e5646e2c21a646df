package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/shopkeeper/internal/config"
	"github.com/roach88/shopkeeper/internal/store"
)

// RootOptions holds global flags shared by all commands.
type RootOptions struct {
	Verbose  bool
	Format   string // "json" | "text"
	Database string // --db flag, overrides config file and env
	Config   string // --config flag, optional YAML config file
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the shopkeeper CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "shopkeeper",
		Short:         "Manage shop inventory, customers, and orders",
		Long:          "A small inventory and order management tool backed by SQLite.\nOrders are applied atomically: stock is validated and decremented,\nprices are captured at order time, and failures leave nothing behind.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return WrapExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats), nil)
			}

			// Configure logging based on verbose flag
			logLevel := slog.LevelInfo
			if opts.Verbose {
				logLevel = slog.LevelDebug
			}
			handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: logLevel,
			})
			slog.SetDefault(slog.New(handler))
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Database, "db", "", "path to SQLite database (default "+config.DefaultDatabase+")")
	cmd.PersistentFlags().StringVar(&opts.Config, "config", "", "path to YAML config file (default "+config.DefaultFile+" if present)")

	// Add subcommands
	cmd.AddCommand(NewInitDBCommand(opts))
	cmd.AddCommand(NewAddProductCommand(opts))
	cmd.AddCommand(NewListProductsCommand(opts))
	cmd.AddCommand(NewUpdateStockCommand(opts))
	cmd.AddCommand(NewDeleteProductCommand(opts))
	cmd.AddCommand(NewAddCustomerCommand(opts))
	cmd.AddCommand(NewListCustomersCommand(opts))
	cmd.AddCommand(NewCreateOrderCommand(opts))
	cmd.AddCommand(NewListOrdersCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// openStore resolves configuration and opens the database for a command.
// Callers own the returned store and must Close it.
func openStore(opts *RootOptions) (*store.Store, config.Config, error) {
	cfg, err := config.Load(config.Options{File: opts.Config, FlagDB: opts.Database})
	if err != nil {
		return nil, config.Config{}, WrapExitError(ExitCommandError, "failed to load configuration", err)
	}

	st, err := store.Open(cfg.Database)
	if err != nil {
		return nil, config.Config{}, WrapExitError(ExitCommandError, "failed to open database", err)
	}
	return st, cfg, nil
}

// formatter builds the output formatter for a command, writing to the
// command's configured stdout so tests can capture it.
func formatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
}

// closeStore closes the store, logging rather than masking the error.
func closeStore(st *store.Store) {
	if err := st.Close(); err != nil {
		slog.Error("error closing database", "error", err)
	}
}
