package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/tabula/pkg/column"
	"github.com/mesh-intelligence/tabula/pkg/rolling"
	"github.com/mesh-intelligence/tabula/pkg/table"
)

func newRollingCmd(a *app) *cobra.Command {
	var (
		in     inputFlags
		window int
		agg    string
	)
	cmd := &cobra.Command{
		Use:   "rolling",
		Short: "Print a rolling-window aggregate next to a column",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if window < 1 {
				return fmt.Errorf("%w: --window must be at least 1, got %d", errUsage, window)
			}
			c, err := a.load(cmd.Context(), in)
			if err != nil {
				return err
			}

			view := column.Rolling(c, window)
			var res *rolling.Result
			switch strings.ToLower(agg) {
			case "mean":
				res = view.Mean()
			case "sum":
				res = view.Sum()
			case "min":
				res = view.Min()
			case "max":
				res = view.Max()
			default:
				return fmt.Errorf("%w: --agg must be mean, sum, min or max, got %q", errUsage, agg)
			}

			if a.flags.jsonMode {
				values := make([]any, res.Size())
				for i, v := range res.Values() {
					values[i] = nullable(v)
				}
				return writeJSON(cmd.OutOrStdout(), map[string]any{"name": res.Name(), "values": values})
			}

			t := table.New("")
			if err := t.AddColumns(c, res); err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), t.Print())
			return err
		},
	}
	addInputFlags(cmd, &in)
	cmd.Flags().IntVar(&window, "window", 3, "window size in rows")
	cmd.Flags().StringVar(&agg, "agg", "mean", "aggregate: mean, sum, min or max")
	return cmd
}
