package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	mdwslicex "github.com/msto63/textkit/foundation/utils/slicex"
	mdwstringx "github.com/msto63/textkit/foundation/utils/stringx"
)

func newSortCmd(a *app) *cobra.Command {
	var unique, reverse bool

	cmd := &cobra.Command{
		Use:   "sort [item]...",
		Short: "Sortiert Zeilen in natürlicher Reihenfolge",
		Long: `Sortiert Zeilen so, dass Zahlen nach ihrem Wert verglichen werden und
Groß-/Kleinschreibung keine Rolle spielt: file2 steht vor file10.

Beispiele:
  ls | textkit sort
  textkit sort --unique --reverse b10 a2 b10 a10`,
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := a.readLines(cmd, args)
			if err != nil {
				return err
			}
			if unique {
				lines = mdwslicex.Unique(lines)
			}
			sorted := mdwstringx.NaturalSort(lines)
			if reverse {
				sorted = mdwslicex.Reverse(sorted)
			}
			for _, s := range sorted {
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&unique, "unique", "u", false, "Doppelte Zeilen entfernen")
	cmd.Flags().BoolVarP(&reverse, "reverse", "r", false, "Absteigend sortieren")
	return cmd
}
