package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/versescope/versescope/pkg/layout"
)

// DefaultTextWidth is the terminal width assumed when none is known.
const DefaultTextWidth = 120

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	labelStyle  = lipgloss.NewStyle().Faint(true)
)

// Text paints columns side by side for a terminal of the given width. Each
// column gets its percentage of the width; right-to-left columns are right aligned.
func Text(w io.Writer, cols []layout.Column, width int) error {
	if len(cols) == 0 {
		_, err := fmt.Fprintln(w, "No translations selected.")
		return err
	}
	if width <= 0 {
		width = DefaultTextWidth
	}

	blocks := make([]string, 0, len(cols)*2)
	for i, col := range cols {
		colWidth := width * col.WidthPercent / 100
		if colWidth < 1 {
			colWidth = 1
		}

		align := lipgloss.Left
		if col.Direction == layout.RightToLeft {
			align = lipgloss.Right
		}
		style := lipgloss.NewStyle().Width(colWidth).Align(align)

		lines := []string{headerStyle.Render(col.Translation.Name)}
		for _, e := range col.Entries {
			lines = append(lines, labelStyle.Render(e.Label)+e.Content)
		}
		if len(col.Entries) == 0 {
			lines = append(lines, labelStyle.Render("(no text)"))
		}

		blocks = append(blocks, style.Render(strings.Join(lines, "\n")))
		if i < len(cols)-1 {
			blocks = append(blocks, " ")
		}
	}

	_, err := fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top, blocks...))
	return err
}
