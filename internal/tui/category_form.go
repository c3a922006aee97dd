package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/mhenke/logbuch/models"
)

// categoryFormModel is the builder for user-defined categories: a name input
// plus a growing list of field rows (label and unit). Rows with an empty
// label are dropped on submit; the server validates the rest.
type categoryFormModel struct {
	name       textinput.Model
	labels     []textinput.Model
	units      []textinput.Model
	focus      int
	submitting bool
}

func newCategoryFormModel() categoryFormModel {
	name := textinput.New()
	name.Placeholder = "Kategoriename"
	name.CharLimit = 64
	name.Width = 30
	name.Focus()

	m := categoryFormModel{name: name}
	return m.addFieldRow()
}

func (m categoryFormModel) addFieldRow() categoryFormModel {
	label := textinput.New()
	label.Placeholder = "Feldname"
	label.CharLimit = 64
	label.Width = 20

	unit := textinput.New()
	unit.Placeholder = "Einheit"
	unit.CharLimit = 16
	unit.Width = 10

	m.labels = append(m.labels, label)
	m.units = append(m.units, unit)
	return m
}

// slotCount counts the focusable inputs: name, then label/unit per row.
func (m categoryFormModel) slotCount() int {
	return 1 + 2*len(m.labels)
}

func (m *categoryFormModel) inputAt(focus int) *textinput.Model {
	if focus == 0 {
		return &m.name
	}
	row := (focus - 1) / 2
	if (focus-1)%2 == 0 {
		return &m.labels[row]
	}
	return &m.units[row]
}

func (m categoryFormModel) setFocus(focus int) categoryFormModel {
	m.inputAt(m.focus).Blur()
	m.focus = focus
	m.inputAt(m.focus).Focus()
	return m
}

func (m categoryFormModel) focusNext() categoryFormModel {
	return m.setFocus((m.focus + 1) % m.slotCount())
}

func (m categoryFormModel) focusPrev() categoryFormModel {
	return m.setFocus((m.focus - 1 + m.slotCount()) % m.slotCount())
}

// toCategory collapses the inputs into a category payload, dropping rows
// without a label.
func (m categoryFormModel) toCategory() models.Category {
	var fields []models.Field
	for i := range m.labels {
		label := strings.TrimSpace(m.labels[i].Value())
		if label == "" {
			continue
		}
		fields = append(fields, models.Field{
			Label: label,
			Unit:  strings.TrimSpace(m.units[i].Value()),
		})
	}

	return models.Category{
		Name:   strings.TrimSpace(m.name.Value()),
		Fields: fields,
	}
}

func (m categoryFormModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Neue Kategorie") + "\n\n")
	b.WriteString("Name         │ [" + m.name.View() + "]\n\n")

	for i := range m.labels {
		b.WriteString("Feld         │ [" + m.labels[i].View() + "] [" + m.units[i].View() + "]\n")
	}

	if m.submitting {
		b.WriteString("\n[Anlegen...]\n")
	} else {
		b.WriteString("\n[Anlegen]\n")
	}

	b.WriteString("\n" + helpStyle.Render("esc zurück │ tab nächstes Feld │ ctrl+a Feld hinzufügen │ enter anlegen"))
	return b.String()
}
