package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	mdwstringx "github.com/msto63/textkit/foundation/utils/stringx"
)

func newExcelCmd() *cobra.Command {
	var seq int
	var alpha bool

	cmd := &cobra.Command{
		Use:   "excel [nummer|name]...",
		Short: "Rechnet Spaltennummern und Excel-Spaltennamen um",
		Long: `Zahlen werden zu Spaltennamen (28 -> AB), Namen zu Zahlen (AB -> 28).
--seq n gibt die ersten n Spaltennamen aus. Mit --alpha werden Zahlen von
0 bis 52 auf _, a-z und A-Z abgebildet.

Beispiele:
  textkit excel 1 28 100
  textkit excel AB xfd
  textkit excel --seq 5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if seq > 0 {
				fmt.Fprintln(out, strings.Join(mdwstringx.SequenceExcel(seq), " "))
			}

			for _, arg := range args {
				s, err := convertColumn(arg, alpha)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, s)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&seq, "seq", 0, "Die ersten n Spaltennamen ausgeben")
	cmd.Flags().BoolVar(&alpha, "alpha", false, "Zahlen 0-52 als _a-zA-Z ausgeben")
	return cmd
}

func convertColumn(arg string, alpha bool) (string, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		col, err := mdwstringx.ParseExcelColName(arg)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(col), nil
	}
	if alpha {
		return mdwstringx.AlphaEnum(n)
	}
	return mdwstringx.ExcelColName(n)
}
