package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
)

func newPagesCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "pages",
		Short: "List the available pages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := rootOpts.formatter(cmd)
			cfg, err := rootOpts.loadConfig(cmd.ErrOrStderr())
			if err != nil {
				return f.Fail(err)
			}
			svc, closeFn, err := openService(cmd.Context(), cfg)
			if err != nil {
				return f.Fail(err)
			}
			defer closeFn()

			groups := svc.ListPagesByGroup()
			return f.Success(groups, func(w io.Writer) error {
				t := &textTable{Title: "Pages", Headers: []string{"Group", "Key", "Label", "Columns", "Page Size"}}
				for _, g := range groups {
					for _, p := range g.Pages {
						t.Rows = append(t.Rows, []string{g.Group, p.Key, p.Label, strconv.Itoa(len(p.Columns)), strconv.Itoa(p.PageSize)})
					}
				}
				_, err := fmt.Fprint(w, t.Render())
				return err
			})
		},
	}
}
