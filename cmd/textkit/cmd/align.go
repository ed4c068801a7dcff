package cmd

import (
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
	mdwstringx "github.com/msto63/textkit/foundation/utils/stringx"
)

type alignOptions struct {
	aligns       string
	width        int
	fill         string
	prefix       string
	suffix       string
	chineseWidth float64
}

func newAlignCmd(a *app) *cobra.Command {
	o := &alignOptions{}

	cmd := &cobra.Command{
		Use:   "align [item]...",
		Short: "Bringt Einträge auf gleiche Breite",
		Long: `Füllt jeden Eintrag (Argument oder Zeile) auf die Breite des breitesten
auf. --aligns gibt je Eintrag l, c oder r an; der letzte Buchstabe gilt für
alle weiteren. Zeilenumbrüche in Einträgen werden als \n ausgegeben.

Beispiele:
  textkit align a 哈哈 ccd
  textkit align --aligns lc --fill . --width 10 a 哈哈 ccd
  textkit align --chinese-width 1.8 哈哈a b`,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := a.readLines(cmd, args)
			if err != nil {
				return err
			}

			aligns, err := mdwstringx.ParseAligns(o.aligns)
			if err != nil {
				return err
			}
			fill, size := utf8.DecodeRuneInString(o.fill)
			if size == 0 || size != len(o.fill) {
				return mdwerror.Newf("fill must be a single character, got %q", o.fill).
					WithCode(mdwerror.CodeInvalidInput).
					WithOperation("cmd.align")
			}

			aligned, err := mdwstringx.ListAlign(items, mdwstringx.ListAlignOptions{
				Aligns:       aligns,
				Width:        o.width,
				Fill:         fill,
				Prefix:       o.prefix,
				Suffix:       o.suffix,
				ChineseWidth: o.chineseWidth,
			})
			if err != nil {
				return err
			}
			for _, s := range aligned {
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&o.aligns, "aligns", "r", "Ausrichtung je Eintrag: l, c, r")
	cmd.Flags().IntVar(&o.width, "width", 0, "Mindestbreite")
	cmd.Flags().StringVar(&o.fill, "fill", " ", "Füllzeichen")
	cmd.Flags().StringVar(&o.prefix, "prefix", "", "Text vor jedem Eintrag")
	cmd.Flags().StringVar(&o.suffix, "suffix", "", "Text nach jedem Eintrag")
	cmd.Flags().Float64Var(&o.chineseWidth, "chinese-width", 2, "Breite eines chinesischen Zeichens in Spalten")
	return cmd
}
