// Package cli implements the erpgrid command line: the web server and
// terminal views of the same pages.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/JonMunkholm/erpgrid/internal/config"
	"github.com/JonMunkholm/erpgrid/internal/core"
	"github.com/JonMunkholm/erpgrid/internal/core/pages"
	"github.com/JonMunkholm/erpgrid/internal/logging"
	"github.com/JonMunkholm/erpgrid/internal/store"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
	EnvFile string

	// Lookup reads configuration. Defaults to the process environment.
	Lookup config.LookupFunc
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command reading the process environment.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{Lookup: os.LookupEnv})
}

// Execute runs the command line and returns the process exit code. Errors
// the commands did not report themselves are printed to stderr.
func Execute() int {
	err := NewRootCommand().Execute()
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if !errors.As(err, &exitErr) || !exitErr.Reported {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	if exitErr == nil {
		// cobra reports unknown commands and bad flags as plain errors.
		return ExitCommandError
	}
	return exitErr.Code
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "erpgrid",
		Short: "Sortable, paginated ERP list pages",
		Long: `erpgrid serves the ERP list pages (CRM leads, corporate cards, stock levels,
error logs, inspections, general ledger) over HTTP and renders them in the
terminal. Records come from PostgreSQL when DATABASE_URL is set, otherwise
from built-in sample data.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.EnvFile, "env-file", ".env", "dotenv file to load if present")

	cmd.AddCommand(newServeCommand(opts))
	cmd.AddCommand(newPagesCommand(opts))
	cmd.AddCommand(newShowCommand(opts))
	cmd.AddCommand(newExportCommand(opts))

	return cmd
}

// loadConfig reads the dotenv file, if any, then the configuration. Logging
// goes to stderr so command output on stdout stays clean.
func (o *RootOptions) loadConfig(stderr io.Writer) (*config.Config, error) {
	if o.EnvFile != "" {
		if err := godotenv.Load(o.EnvFile); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("load %s: %w", o.EnvFile, err)
		}
	}

	lookup := o.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}
	cfg, err := config.LoadFrom(lookup)
	if err != nil {
		return nil, err
	}

	level := cfg.Logging.Level
	if o.Verbose {
		level = "debug"
	}
	logging.Setup(stderr, level, cfg.Logging.Format)
	return cfg, nil
}

// openService builds the page service. With a database configured the pages
// read PostgreSQL; close releases the pool.
func openService(ctx context.Context, cfg *config.Config) (svc *core.Service, closeFn func(), err error) {
	opts := pages.Options{
		DefaultPageSize: cfg.Table.DefaultPageSize,
		PagerWindow:     cfg.Table.PagerWindow,
	}
	closeFn = func() {}

	if cfg.Database.Enabled() {
		pool, err := store.Open(ctx, cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		opts.DB = pool
		closeFn = pool.Close
	}

	reg := core.NewRegistry()
	pages.Install(reg, opts)
	return core.NewService(reg, core.Limits{MaxPageSize: cfg.Table.MaxPageSize}), closeFn, nil
}

// formatter returns the output formatter for cmd.
func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   o.Verbose,
	}
}
