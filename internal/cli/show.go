package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/tabula/internal/pipeline"
)

func newShowCmd(a *app) *cobra.Command {
	var (
		in   inputFlags
		ops  []string
		seed uint64
	)
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print a column after applying operations",
		Long: "Load a column and apply each --op in order, then print the result.\n\n" +
			"Operations: lag=N, lead=N, first=N, last=N, range=START:END, rows=I,J,...,\n" +
			"sample=N, fraction=P, fill=VALUE, unique, sort[=asc|desc], dropna, rename=NAME.",
		Example: "  tabula show --csv prices.csv --column close --type FLOAT --op dropna --op lag=1",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			steps, err := pipeline.ParseAll(ops)
			if err != nil {
				return err
			}
			c, err := a.load(cmd.Context(), in)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("seed") {
				seed = a.cfg.Seed
			}
			out, err := pipeline.NewRunner(seed, a.logger).Run(c, steps)
			if err != nil {
				a.logger.Error("operation failed", "error", err)
				return err
			}

			if a.flags.jsonMode {
				return writeJSON(cmd.OutOrStdout(), newColumnJSON(out))
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out.Print())
			return err
		},
	}
	addInputFlags(cmd, &in)
	cmd.Flags().StringArrayVar(&ops, "op", nil, "operation to apply, repeatable")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed for sample and fraction (overrides config)")
	return cmd
}
