package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/mhenke/logbuch/internal/track"
	"github.com/mhenke/logbuch/models"
)

// entryFormModel renders the dynamic entry form of one category: one text
// input per declared field, plus a product search row for nutrition
// categories. The form is rebuilt from the category schema on every visit.
type entryFormModel struct {
	category models.Category
	form     track.Form
	inputs   []textinput.Model

	search    textinput.Model
	hasSearch bool
	searching bool
	searchErr string

	// focus indexes the search row as 0 (when present) and the field rows
	// after it.
	focus      int
	submitting bool
}

func newEntryFormModel(cat models.Category) entryFormModel {
	form := track.NewForm(cat)

	inputs := make([]textinput.Model, len(form))
	for i, slot := range form {
		input := textinput.New()
		input.Placeholder = slot.Field.Label
		input.CharLimit = 128
		input.Width = 30
		inputs[i] = input
	}

	m := entryFormModel{
		category:  cat,
		form:      form,
		inputs:    inputs,
		hasSearch: cat.SpecialType == models.SpecialTypeNutrition,
	}

	if m.hasSearch {
		search := textinput.New()
		search.Placeholder = "Produkt suchen..."
		search.CharLimit = 128
		search.Width = 30
		search.Focus()
		m.search = search
	} else if len(m.inputs) > 0 {
		m.inputs[0].Focus()
	}

	return m
}

// slotCount is the number of focusable rows: the optional search row plus
// one row per field.
func (m entryFormModel) slotCount() int {
	if m.hasSearch {
		return len(m.inputs) + 1
	}
	return len(m.inputs)
}

// searchFocused reports whether the search row currently holds focus.
func (m entryFormModel) searchFocused() bool {
	return m.hasSearch && m.focus == 0
}

// fieldIndex converts the focus position into an index of inputs.
func (m entryFormModel) fieldIndex() int {
	if m.hasSearch {
		return m.focus - 1
	}
	return m.focus
}

func (m entryFormModel) blurAll() entryFormModel {
	m.search.Blur()
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	return m
}

func (m entryFormModel) setFocus(focus int) entryFormModel {
	m = m.blurAll()
	m.focus = focus
	if m.searchFocused() {
		m.search.Focus()
	} else if i := m.fieldIndex(); i >= 0 && i < len(m.inputs) {
		m.inputs[i].Focus()
	}
	return m
}

func (m entryFormModel) focusNext() entryFormModel {
	if m.slotCount() == 0 {
		return m
	}
	return m.setFocus((m.focus + 1) % m.slotCount())
}

func (m entryFormModel) focusPrev() entryFormModel {
	if m.slotCount() == 0 {
		return m
	}
	return m.setFocus((m.focus - 1 + m.slotCount()) % m.slotCount())
}

// currentForm reads the live input values back into the form slots.
func (m entryFormModel) currentForm() track.Form {
	for i := range m.form {
		m.form[i].Value = strings.TrimSpace(m.inputs[i].Value())
	}
	return m.form
}

// applyProduct writes a successful lookup into the form and moves focus to
// the amount field for quick entry.
func (m entryFormModel) applyProduct(product models.Product) entryFormModel {
	form := m.currentForm()
	focusField := track.ApplyProduct(form, product)

	for i, slot := range form {
		m.inputs[i].SetValue(slot.Value)
	}
	m.form = form

	if focusField >= 0 {
		focus := focusField
		if m.hasSearch {
			focus++
		}
		m = m.setFocus(focus)
	}

	return m
}

func (m entryFormModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.category.Name+categoryIcon(m.category.SpecialType)) + "\n\n")

	if m.hasSearch {
		b.WriteString("Suche        │ [" + m.search.View() + "]")
		if m.searching {
			b.WriteString("  ...")
		}
		b.WriteString("\n")
		if m.searchErr != "" {
			b.WriteString(errorStyle.Render(m.searchErr) + "\n")
		}
		b.WriteString("\n")
	}

	for i, slot := range m.form {
		label := slot.Field.Label
		if slot.Field.Unit != "" {
			label += " (" + slot.Field.Unit + ")"
		}
		b.WriteString(padLabel(label) + "│ [" + m.inputs[i].View() + "]\n")
	}

	if m.submitting {
		b.WriteString("\n[Speichern...]\n")
	} else {
		b.WriteString("\n[Speichern]\n")
	}

	help := "esc zurück │ tab nächstes Feld │ enter speichern"
	if m.hasSearch {
		help = "esc zurück │ tab nächstes Feld │ enter im Suchfeld sucht, sonst speichern"
	}
	b.WriteString("\n" + helpStyle.Render(help))
	return b.String()
}

// padLabel pads a row label to a fixed width so the input column lines up.
func padLabel(label string) string {
	const width = 13
	if n := len([]rune(label)); n < width {
		return label + strings.Repeat(" ", width-n)
	}
	return label + " "
}
