package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/tabula/pkg/columns"
	"github.com/mesh-intelligence/tabula/pkg/table"
)

type typeInfo struct {
	Name     string `json:"name"`
	ByteSize int    `json:"byte_size"`
	Numeric  bool   `json:"numeric"`
}

func newTypesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the column types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var infos []typeInfo
			for _, name := range columns.Types() {
				f, err := columns.Lookup(name)
				if err != nil {
					return err
				}
				infos = append(infos, typeInfo{Name: f.Name(), ByteSize: f.ByteSize(), Numeric: f.Numeric()})
			}

			if a.flags.jsonMode {
				return writeJSON(cmd.OutOrStdout(), infos)
			}

			var names, sizes, numeric []string
			for _, info := range infos {
				names = append(names, info.Name)
				sizes = append(sizes, strconv.Itoa(info.ByteSize))
				numeric = append(numeric, strconv.FormatBool(info.Numeric))
			}
			t := table.New("")
			if err := t.AddColumns(
				table.NewTextColumn("Type", names...),
				table.NewTextColumn("Bytes", sizes...),
				table.NewTextColumn("Numeric", numeric...),
			); err != nil {
				return err
			}
			_, err := fmt.Fprint(cmd.OutOrStdout(), t.Print())
			return err
		},
	}
}
