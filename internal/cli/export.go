package cli

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func newExportCommand(rootOpts *RootOptions) *cobra.Command {
	qo := &QueryOptions{}
	var output string

	cmd := &cobra.Command{
		Use:   "export <page>",
		Short: "Write every matching record as CSV",
		Long: `Write every record matching the search and filters as CSV, in the
requested sort order. The output format flag does not apply.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := rootOpts.formatter(cmd)
			q, err := qo.query()
			if err != nil {
				return f.Fail(err)
			}
			cfg, err := rootOpts.loadConfig(cmd.ErrOrStderr())
			if err != nil {
				return f.Fail(err)
			}
			svc, closeFn, err := openService(cmd.Context(), cfg)
			if err != nil {
				return f.Fail(err)
			}
			defer closeFn()

			var w io.Writer = cmd.OutOrStdout()
			if output != "" && output != "-" {
				file, err := os.Create(output)
				if err != nil {
					return f.Fail(fmt.Errorf("create %s: %w", output, err))
				}
				defer file.Close()
				w = file
			}

			csvWriter := csv.NewWriter(w)
			rows := 0
			err = svc.ExportPage(cmd.Context(), args[0], q, func(record []string) error {
				rows++
				return csvWriter.Write(record)
			})
			csvWriter.Flush()
			if err == nil {
				err = csvWriter.Error()
			}
			if err != nil {
				return f.Fail(err)
			}

			slog.Debug("export complete", "page", args[0], "rows", rows-1)
			return nil
		},
	}
	qo.register(cmd, false)
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	return cmd
}
