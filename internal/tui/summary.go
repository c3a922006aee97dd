package tui

import (
	"strconv"
	"strings"

	"github.com/mhenke/logbuch/internal/track"
)

// summaryModel renders the bar chart the reporting tab of the original web
// UI drew with chart.js: one bar per display-text group, scaled to the
// largest total.
type summaryModel struct {
	groups []track.Group
}

const maxBarWidth = 40

func (m summaryModel) View() string {
	out := titleStyle.Render("Auswertung") + "\n\n"

	if len(m.groups) == 0 {
		out += "Noch keine Einträge\n"
	} else {
		labelWidth := 0
		maxTotal := 0.0
		for _, group := range m.groups {
			if n := len([]rune(group.Label)); n > labelWidth {
				labelWidth = n
			}
			if group.Total > maxTotal {
				maxTotal = group.Total
			}
		}

		for _, group := range m.groups {
			label := group.Label + strings.Repeat(" ", labelWidth-len([]rune(group.Label)))
			out += label + " │ " + barStyle.Render(renderBar(group.Total, maxTotal)) +
				" " + strconv.FormatFloat(group.Total, 'f', -1, 64) + "\n"
		}

		out += "\n" + helpStyle.Render("Summe (Kcal/Min/Score)") + "\n"
	}

	out += "\n" + helpStyle.Render("esc zurück")
	return out
}

// renderBar scales total against the chart maximum; any positive total gets
// at least one cell so small bars stay visible.
func renderBar(total, maxTotal float64) string {
	if maxTotal <= 0 || total <= 0 {
		return ""
	}

	width := int(total / maxTotal * maxBarWidth)
	if width < 1 {
		width = 1
	}
	return strings.Repeat("█", width)
}
