package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	mdwslicex "github.com/msto63/textkit/foundation/utils/slicex"
	mdwstringx "github.com/msto63/textkit/foundation/utils/stringx"
	"github.com/msto63/textkit/foundation/utils/tablex"
)

func newWidthCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "width [text]...",
		Short: "Misst die Anzeigebreite von Text",
		Long: `Gibt für jede Zeile (oder jedes Argument) drei Breiten aus:
  gbk        Bytes in GBK, also 2 Spalten je chinesischem Zeichen
  eastasian  Unicode East Asian Width, mehrdeutige Zeichen nach --ambiguous-wide
  display    Terminalbreite ohne ANSI-Escape-Sequenzen

Beispiele:
  textkit width "a⑪中⑩"
  textkit width --ambiguous-wide ①②③`,
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := a.readLines(cmd, args)
			if err != nil {
				return err
			}
			wide := a.boolSetting(cmd, "ambiguous-wide", "width.ambiguous_wide")

			rows := mdwslicex.Map(lines, func(s string) []string {
				return []string{
					s,
					strconv.Itoa(mdwstringx.StrWidth(s)),
					strconv.Itoa(mdwstringx.EastAsianWidth(s, wide)),
					strconv.Itoa(mdwstringx.DisplayWidth(s)),
				}
			})

			opts := tablex.DefaultOptions()
			opts.Shorten = false
			opts.Border = a.cfg.GetString("table.border")
			out, err := tablex.Render([]string{"text", "gbk", "eastasian", "display"}, rows, opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().Bool("ambiguous-wide", false, "Mehrdeutige Zeichen wie ① doppelt breit zählen")
	return cmd
}
