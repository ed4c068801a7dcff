package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	mdwslicex "github.com/msto63/textkit/foundation/utils/slicex"
	mdwstringx "github.com/msto63/textkit/foundation/utils/stringx"
)

func newFuzzyCmd(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "fuzzy <muster>",
		Short: "Unscharfe Suche in Zeilen",
		Long: `Liest Kandidaten zeilenweise aus --file oder stdin und gibt die Zeilen
aus, die die Zeichen des Musters in dieser Reihenfolge enthalten. Die beste
Übereinstimmung steht oben, die getroffenen Zeichen werden hervorgehoben.

Beispiele:
  ls | textkit fuzzy mnr
  textkit fuzzy -f commands.txt --limit 5 gco`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := a.readLines(cmd, nil)
			if err != nil {
				return err
			}
			candidates := mdwslicex.Filter(lines, func(s string) bool {
				return !mdwstringx.IsBlank(s)
			})

			matches := mdwstringx.FuzzyFind(args[0], candidates)
			if limit > 0 && len(matches) > limit {
				matches = matches[:limit]
			}
			for _, m := range matches {
				fmt.Fprintln(cmd.OutOrStdout(), highlight(m.Str, m.MatchedIndexes))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Höchstens so viele Treffer (0: alle)")
	return cmd
}
