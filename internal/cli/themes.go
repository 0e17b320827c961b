package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/toplangs/pkg/render/card"
	"github.com/matzehuels/toplangs/pkg/themes"
)

// themesCommand creates the themes command listing the built-in themes.
func (c *CLI) themesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List the built-in color themes",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			report(out, statusNote, "%d themes", len(themes.Names()))
			for _, name := range themes.Names() {
				colors := themes.Resolver{}.Resolve(card.ColorOptions{Theme: name})
				field(out, name, themeSwatch(colors))
			}
		},
	}
}

// themeSwatch renders the title, text and background colors as blocks.
func themeSwatch(c card.Colors) string {
	var parts []string
	for _, hex := range []string{c.Title, c.Text, c.Background} {
		rgb, ok := themes.ToRGB(hex)
		if !ok {
			continue
		}
		parts = append(parts, lipgloss.NewStyle().Background(lipgloss.Color(rgb)).Render("   ")+" "+hex)
	}
	return strings.Join(parts, "  ")
}
