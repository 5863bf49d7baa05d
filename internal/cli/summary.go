package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/tabula/pkg/column"
)

func newSummaryCmd(a *app) *cobra.Command {
	var in inputFlags
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print summary statistics of a column",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.load(cmd.Context(), in)
			if err != nil {
				return err
			}
			t := column.Summary(c)
			if a.flags.jsonMode {
				return writeJSON(cmd.OutOrStdout(), tableJSON(t))
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), t.Print())
			return err
		},
	}
	addInputFlags(cmd, &in)
	return cmd
}
