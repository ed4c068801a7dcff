package cmd

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/cobra"

	mdwslicex "github.com/msto63/textkit/foundation/utils/slicex"
	mdwstringx "github.com/msto63/textkit/foundation/utils/stringx"
	"github.com/msto63/textkit/foundation/utils/tablex"
)

type tableOptions struct {
	sep       string
	header    bool
	index     bool
	transpose bool
	hang      bool
	depth     int
	html      bool
	columns   int
}

// columnSplit matches the default column separator: a tab or two or more
// spaces.
var columnSplit = regexp.MustCompile(`\t| {2,}`)

func newTableCmd(a *app) *cobra.Command {
	o := &tableOptions{}

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Stellt Zeilen als Tabelle dar",
		Long: `Liest Zeilen aus --file oder stdin und zerlegt sie in Zellen, standardmäßig
an Tabs oder mindestens zwei Leerzeichen. Lange Zellen werden nach
Anzeigebreite gekürzt.

Mit --hang werden Zellen geleert, die die Zeile darüber wiederholen; mit
--html entsteht eine HTML-Tabelle, in der solche Zellen zusammengefasst
werden. --columns verteilt eine Liste auf die angegebene Spaltenzahl.

Beispiele:
  textkit table --header -f data.tsv
  textkit table --hang --html -f tree.txt > tree.html
  ls | textkit table --columns 4`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := a.readLines(cmd, nil)
			if err != nil {
				return err
			}
			rows := tableRows(lines, o)

			var headers []string
			if o.header && len(rows) > 0 {
				headers, rows = rows[0], rows[1:]
			}
			if o.transpose {
				rows = mdwslicex.Transpose(mdwslicex.EnsureRect(rows, ""))
			}
			if o.hang {
				rows = mdwslicex.HangClear(mdwslicex.EnsureRect(rows, ""), o.depth, "")
			}

			out := cmd.OutOrStdout()
			if o.html {
				if headers != nil {
					rows = append([][]string{headers}, rows...)
				}
				fmt.Fprintln(out, tablex.HTML(rows, o.hang))
				return nil
			}

			opts := tablex.DefaultOptions()
			opts.MaxColWidth = a.intSetting(cmd, "max-col-width", "table.max_col_width")
			opts.Shorten = a.cfg.GetBool("table.shorten")
			opts.Border = a.stringSetting(cmd, "border", "table.border")
			opts.Index = o.index
			opts.HeaderStyle = TitleStyle

			timer := a.log.StartTimer("table").WithField("rows", len(rows))
			rendered, err := tablex.Render(headers, rows, opts)
			if err != nil {
				timer.StopWithError(err)
				return err
			}
			timer.Stop()
			fmt.Fprintln(out, rendered)
			return nil
		},
	}

	cmd.Flags().StringVar(&o.sep, "sep", "", "Zellentrenner (default: Tab oder 2+ Leerzeichen)")
	cmd.Flags().BoolVar(&o.header, "header", false, "Erste Zeile ist die Kopfzeile")
	cmd.Flags().BoolVar(&o.index, "index", false, "Zeilennummern voranstellen")
	cmd.Flags().BoolVar(&o.transpose, "transpose", false, "Zeilen und Spalten tauschen")
	cmd.Flags().BoolVar(&o.hang, "hang", false, "Wiederholte führende Zellen leeren")
	cmd.Flags().IntVar(&o.depth, "depth", 0, "Mit --hang: höchstens so viele Spalten (0: alle außer der letzten)")
	cmd.Flags().BoolVar(&o.html, "html", false, "HTML-Tabelle ausgeben")
	cmd.Flags().IntVar(&o.columns, "columns", 0, "Einträge auf so viele Spalten verteilen")
	cmd.Flags().String("border", "normal", "Rahmen: "+strings.Join(tablex.Borders(), ", "))
	cmd.Flags().Int("max-col-width", tablex.DefaultMaxColWidth, "Maximale Zellenbreite")
	return cmd
}

// tableRows turns input lines into cells. Blank lines are skipped and a
// leading separator yields an empty first cell.
func tableRows(lines []string, o *tableOptions) [][]string {
	lines = mdwslicex.Filter(lines, func(s string) bool {
		return !mdwstringx.IsBlank(s)
	})
	if o.columns > 0 {
		items := mdwslicex.Map(lines, strings.TrimSpace)
		return mdwslicex.Chunk(items, o.columns)
	}

	return mdwslicex.Map(lines, func(line string) []string {
		line = strings.TrimRight(line, " \r")
		if o.sep != "" {
			return strings.Split(line, o.sep)
		}
		return columnSplit.Split(line, -1)
	})
}
