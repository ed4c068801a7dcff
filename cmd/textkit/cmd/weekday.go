package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
	"github.com/msto63/textkit/foundation/utils/prettyx"
	mdwstringx "github.com/msto63/textkit/foundation/utils/stringx"
)

func newWeekdayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "weekday <1-7>...",
		Short: "Wandelt Wochentagsnummern in chinesische Bezeichnungen",
		Long: `1 bis 7 werden zu 周一 bis 周日.

Beispiel:
  textkit weekday 1 7`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			days := make([]int, len(args))
			for i, arg := range args {
				d, err := strconv.Atoi(arg)
				if err != nil {
					return mdwerror.Wrap(err, "weekday must be a number").
						WithCode(mdwerror.CodeInvalidInput).
						WithOperation("cmd.weekday").
						WithDetail("arg", arg)
				}
				if _, err := mdwstringx.WeekdayTag(d); err != nil {
					return err
				}
				days[i] = d
			}

			tag := prettyx.Printed(cmd.OutOrStdout(), func(d int) string {
				s, _ := mdwstringx.WeekdayTag(d)
				return s
			})
			for _, d := range days {
				tag(d)
			}
			return nil
		},
	}
}
