package render

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"gitlab.com/tinyland/lab/arrange/pkg/scene"
	"gitlab.com/tinyland/lab/arrange/pkg/theme"
)

// Table lists items as a bordered table, indenting ids by depth.
// The header is drawn in the theme's status colour.
func Table(items []scene.Item, r *lipgloss.Renderer, th theme.Theme) string {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	headerStyle := r.NewStyle().Bold(true).Padding(0, 1).Foreground(lipgloss.Color(th.Status))
	cellStyle := r.NewStyle().Padding(0, 1)

	rows := make([][]string, len(items))
	for i, rec := range Records(items) {
		rows[i] = []string{
			padRight("", 2*rec.Depth) + rec.ID,
			rec.Layering,
			strconv.Itoa(rec.X),
			strconv.Itoa(rec.Y),
			strconv.Itoa(rec.Width),
			strconv.Itoa(rec.Height),
		}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "LAYERING", "X", "Y", "W", "H").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	return t.Render()
}
