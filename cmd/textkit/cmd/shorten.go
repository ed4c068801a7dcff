package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	mdwstringx "github.com/msto63/textkit/foundation/utils/stringx"
)

func newShortenCmd(a *app) *cobra.Command {
	var eastAsian, gbk bool

	cmd := &cobra.Command{
		Use:   "shorten [text]...",
		Short: "Kürzt Zeilen auf eine Breite",
		Long: `Fasst Leerraum zusammen und kürzt jede Zeile auf --width Zeichen. Mit
--east-asian wird nach Anzeigebreite gekürzt (chinesische Zeichen zählen
doppelt) und der Platzhalter angehängt; das Ergebnis bleibt schmaler als
--width.

Beispiele:
  textkit shorten --width 11 "Hello   world, again"
  textkit shorten --east-asian --width 11 a啊ba啊ba啊ba啊b`,
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := a.readLines(cmd, args)
			if err != nil {
				return err
			}
			width := a.intSetting(cmd, "width", "shorten.width")
			placeholder := a.stringSetting(cmd, "placeholder", "shorten.placeholder")

			for _, line := range lines {
				if gbk {
					line = mdwstringx.EnsureGBK(line)
				}
				if eastAsian {
					line = mdwstringx.EastAsianShorten(line, width, placeholder)
				} else {
					line = mdwstringx.Shorten(line, width)
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}

	cmd.Flags().IntP("width", "w", 200, "Maximale Breite")
	cmd.Flags().String("placeholder", mdwstringx.DefaultPlaceholder, "Platzhalter für gekürzten Text")
	cmd.Flags().BoolVarP(&eastAsian, "east-asian", "e", false, "Nach Anzeigebreite kürzen")
	cmd.Flags().BoolVar(&gbk, "gbk", false, "Zeichen ohne GBK-Darstellung entfernen")
	return cmd
}
