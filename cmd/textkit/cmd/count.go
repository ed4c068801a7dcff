package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	mdwslicex "github.com/msto63/textkit/foundation/utils/slicex"
	"github.com/msto63/textkit/foundation/utils/prettyx"
)

func newCountCmd(a *app) *cobra.Command {
	var words bool

	cmd := &cobra.Command{
		Use:   "count",
		Short: "Zählt gleiche Zeilen oder Wörter",
		Long: `Zählt, wie oft jede Zeile (oder mit --words jedes Wort) vorkommt, und
gibt eine Tabelle aus, die häufigsten zuerst.

Beispiele:
  textkit count -f access.log
  textkit count --words < text.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.readText(cmd, nil)
			if err != nil {
				return err
			}

			var items []string
			if words {
				items = strings.Fields(text)
			} else {
				items = mdwslicex.Filter(strings.Split(text, "\n"), func(s string) bool {
					return strings.TrimSpace(s) != ""
				})
			}

			fmt.Fprintln(cmd.OutOrStdout(), prettyx.Prettify(prettyx.NewCounter(items...)))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&words, "words", "w", false, "Wörter statt Zeilen zählen")
	return cmd
}
