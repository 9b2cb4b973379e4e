package cli

import (
	"strings"

	"github.com/JonMunkholm/erpgrid/internal/datatable"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2563eb"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280"))
)

// textTable renders rows of cells as aligned columns.
type textTable struct {
	Title   string
	Headers []string
	Align   []datatable.Align
	Rows    [][]string
}

// Render lays out the table. Widths are measured with lipgloss so wide
// runes and ANSI sequences do not skew columns.
func (t *textTable) Render() string {
	var sb strings.Builder
	if t.Title != "" {
		sb.WriteString(titleStyle.Render(t.Title))
		sb.WriteString("\n\n")
	}

	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}
	// Width includes padding.
	for i := range widths {
		widths[i] += 2
	}

	sep := mutedStyle.Render("│")

	header := make([]string, len(t.Headers))
	for i, h := range t.Headers {
		header[i] = headerStyle.Width(widths[i]).Align(t.position(i)).Render(h)
	}
	sb.WriteString(strings.Join(header, sep))
	sb.WriteString("\n")

	rule := make([]string, len(widths))
	for i, w := range widths {
		rule[i] = strings.Repeat("─", w)
	}
	sb.WriteString(mutedStyle.Render(strings.Join(rule, "┼")))
	sb.WriteString("\n")

	for _, row := range t.Rows {
		cells := make([]string, len(widths))
		for i := range widths {
			var text string
			if i < len(row) {
				text = row[i]
			}
			cells[i] = cellStyle.Width(widths[i]).Align(t.position(i)).Render(text)
		}
		sb.WriteString(strings.Join(cells, sep))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (t *textTable) position(col int) lipgloss.Position {
	if col >= len(t.Align) {
		return lipgloss.Left
	}
	switch t.Align[col] {
	case datatable.AlignRight:
		return lipgloss.Right
	case datatable.AlignCenter:
		return lipgloss.Center
	default:
		return lipgloss.Left
	}
}
