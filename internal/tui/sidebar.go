package tui

import (
	"fmt"
	"strings"

	"github.com/mhenke/logbuch/models"
)

// sidebarModel is the main screen: the category list the user navigates to
// reach the entry form, the entry list, and the summary chart.
type sidebarModel struct {
	categories []models.Category
	idx        int
	loading    bool
	username   string
	status     string
}

func newSidebarModel() sidebarModel {
	return sidebarModel{loading: true}
}

func (m sidebarModel) current() (models.Category, bool) {
	if len(m.categories) == 0 || m.idx < 0 || m.idx >= len(m.categories) {
		return models.Category{}, false
	}
	return m.categories[m.idx], true
}

// categoryIcon decorates the seeded categories the same way the sidebar of
// the original web UI did.
func categoryIcon(specialType models.SpecialType) string {
	switch specialType {
	case models.SpecialTypeFitness:
		return " 🏃"
	case models.SpecialTypeNutrition:
		return " 🍎"
	case models.SpecialTypeMood:
		return " 🧠"
	default:
		return ""
	}
}

func (m sidebarModel) View() string {
	header := titleStyle.Render("Logbuch")
	if m.username != "" {
		header += helpStyle.Render("  (" + m.username + ")")
	}
	out := header + "\n\n"

	if m.loading {
		out += "Laden...\n"
	} else if len(m.categories) == 0 {
		out += "Keine Kategorien\n"
	} else {
		for i, cat := range m.categories {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			out += fmt.Sprintf("%s%s%s\n", cursor, cat.Name, categoryIcon(cat.SpecialType))
		}
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	out += "\n" + helpStyle.Render(strings.TrimSpace(
		"enter eintragen  e Einträge  s Auswertung  n neue Kategorie  r zurücksetzen  l abmelden  q beenden"))
	return out
}
