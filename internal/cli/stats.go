package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	tlio "github.com/matzehuels/toplangs/pkg/io"
	"github.com/matzehuels/toplangs/pkg/pipeline"
	"github.com/matzehuels/toplangs/pkg/themes"
)

// statsCommand creates the stats command that prints the selected languages.
func (c *CLI) statsCommand() *cobra.Command {
	var (
		flags  cardFlags
		asJSON bool
		export string
	)

	cmd := &cobra.Command{
		Use:   "stats <stats-file|->",
		Short: "Print the languages a card would show",
		Long: `Print the languages a card would show, after hiding and truncation,
with their share of the selected total.

--export writes the whole input set as canonical JSON, which is handy for
converting TOML or YAML stats files.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, _, err := c.baseOptions()
			if err != nil {
				return err
			}
			ro := flags.apply(cmd, base)
			set, err := readStats(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}

			if export != "" {
				if err := tlio.ExportSet(export, set); err != nil {
					return err
				}
				report(cmd.ErrOrStderr(), statusOK, "Exported %d languages", len(set))
				pathLine(cmd.ErrOrStderr(), export)
				return nil
			}

			result := pipeline.RunContext(cmd.Context(), set, ro, themes.Resolver{})
			entries := entriesFor(result)
			if asJSON {
				return tlio.WriteJSON(cmd.OutOrStdout(), entries)
			}
			writeStatsTable(cmd.OutOrStdout(), entries, result.Total)
			return nil
		},
	}

	addCardFlags(cmd, &flags)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	cmd.Flags().StringVar(&export, "export", "", "write the input set as JSON to this file")
	return cmd
}

func entriesFor(result pipeline.Result) []tlio.Entry {
	entries := make([]tlio.Entry, len(result.Selected))
	for i, s := range result.Selected {
		entries[i] = tlio.Entry{
			Name:       s.Name,
			Size:       s.Size,
			RecentSize: s.RecentSize,
			Color:      result.Fragment.Bars[i].Color,
			Percent:    result.Fragment.Bars[i].Percent,
		}
	}
	return entries
}

func writeStatsTable(w io.Writer, entries []tlio.Entry, total float64) {
	if len(entries) == 0 {
		fmt.Fprintln(w, StyleDim.Render("no languages to show"))
		return
	}

	nameWidth := runewidth.StringWidth("Language")
	for _, e := range entries {
		nameWidth = max(nameWidth, runewidth.StringWidth(e.Name))
	}

	header := fmt.Sprintf("%3s  %s  %10s  %8s", "#", runewidth.FillRight("Language", nameWidth), "Size", "Share")
	fmt.Fprintln(w, StyleTitle.Render(header))
	for i, e := range entries {
		dot := colorStyle(e.Color).Render(dotGlyph)
		fmt.Fprintf(w, "%3d  %s  %10s  %s %s\n",
			i+1,
			runewidth.FillRight(e.Name, nameWidth),
			humanize.Bytes(uint64(e.Size)),
			StyleNumber.Render(fmt.Sprintf("%7.2f%%", e.Percent)),
			dot)
	}
	fmt.Fprintln(w, StyleDim.Render(strings.Repeat("─", lipgloss.Width(header))))
	fmt.Fprintf(w, "%3s  %s  %10s\n", "", runewidth.FillRight("Total", nameWidth), humanize.Bytes(uint64(total)))
}
