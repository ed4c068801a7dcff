package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/textkit/foundation/core/log"
	mdwstringx "github.com/msto63/textkit/foundation/utils/stringx"
)

type findOptions struct {
	text       string
	occurrence int
	start      int
	backward   bool
	overlap    bool
	all        bool
	runes      bool
}

func newFindCmd(a *app) *cobra.Command {
	o := &findOptions{}

	cmd := &cobra.Command{
		Use:   "find <needle>...",
		Short: "Sucht ein oder mehrere Muster im Text",
		Long: `Sucht das n-te Vorkommen eines Musters. Bei mehreren Mustern gewinnt in
jedem Schritt der nächstgelegene Treffer. Der Text kommt aus --text, --file
oder stdin. Ausgabe: Position und gefundenes Muster, -1 wenn nichts gefunden.

Beispiele:
  textkit find --text aabbaabb bb
  textkit find --text aabbaabb -n 2 aa bb
  textkit find --text aaaa --overlap -n 1 aa
  textkit find --text aabbaabb --backward aa
  textkit find --all -f notes.txt TODO FIXME`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runFind(cmd, o, args)
		},
	}

	cmd.Flags().StringVarP(&o.text, "text", "t", "", "Zu durchsuchender Text")
	cmd.Flags().IntVarP(&o.occurrence, "occurrence", "n", 0, "Vorkommen, 0 ist das erste")
	cmd.Flags().IntVar(&o.start, "start", 0, "Startposition in Bytes")
	cmd.Flags().BoolVarP(&o.backward, "backward", "b", false, "Rückwärts suchen")
	cmd.Flags().BoolVar(&o.overlap, "overlap", false, "Überlappende Treffer zulassen")
	cmd.Flags().BoolVar(&o.all, "all", false, "Alle Treffer ausgeben")
	cmd.Flags().BoolVar(&o.runes, "runes", false, "Positionen in Zeichen statt Bytes")
	return cmd
}

func (a *app) runFind(cmd *cobra.Command, o *findOptions, needles []string) error {
	haystack := o.text
	if !cmd.Flags().Changed("text") {
		var err error
		if haystack, err = a.readText(cmd, nil); err != nil {
			return err
		}
	}

	pattern := mdwstringx.Single(needles[0])
	if len(needles) > 1 {
		pattern = mdwstringx.AnyOf(needles...)
	}

	opts := []mdwstringx.Option{mdwstringx.Occurrence(o.occurrence)}
	if cmd.Flags().Changed("start") {
		opts = append(opts, mdwstringx.WithStart(o.start))
	}
	dir := mdwstringx.Forward
	if o.backward {
		dir = mdwstringx.Backward
	}
	opts = append(opts, mdwstringx.WithDirection(dir))
	if o.overlap {
		opts = append(opts, mdwstringx.WithOverlap())
	}

	pos := func(p int) int {
		if o.runes {
			return mdwstringx.RuneOffset(haystack, p)
		}
		return p
	}

	out := cmd.OutOrStdout()
	if o.all {
		positions, err := mdwstringx.FindAll(haystack, pattern, opts...)
		if err != nil {
			return err
		}
		for _, p := range positions {
			fmt.Fprintln(out, pos(p))
		}
		return nil
	}

	m, err := mdwstringx.Find(haystack, pattern, opts...)
	if err != nil {
		return err
	}
	a.log.Debug("search finished", mdwlog.Fields{
		"needles":   needles,
		"found":     m.Found,
		"pos":       m.Pos,
		"direction": dir.String(),
	})

	if !m.Found {
		fmt.Fprintln(out, mdwstringx.NotFound)
		return nil
	}
	fmt.Fprintf(out, "%d\t%s\n", pos(m.Pos), m.Needle)
	return nil
}
