package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/mhenke/logbuch/models"
)

// entryListModel shows the recorded entries of the selected category,
// newest first, with per-entry delete and clipboard copy.
type entryListModel struct {
	category models.Category
	entries  []models.Entry
	idx      int
	status   string
}

func (m entryListModel) current() (models.Entry, bool) {
	if len(m.entries) == 0 || m.idx < 0 || m.idx >= len(m.entries) {
		return models.Entry{}, false
	}
	return m.entries[m.idx], true
}

// detailsLine renders an entry's details in the category's field order, with
// any leftover keys (from schema edits) appended alphabetically.
func detailsLine(entry models.Entry, cat models.Category) string {
	var parts []string
	used := make(map[string]bool, len(entry.Details))

	for _, field := range cat.Fields {
		if value, ok := entry.Details[field.Label]; ok {
			parts = append(parts, field.Label+": "+value)
			used[field.Label] = true
		}
	}

	var rest []string
	for label := range entry.Details {
		if !used[label] {
			rest = append(rest, label)
		}
	}
	sort.Strings(rest)
	for _, label := range rest {
		parts = append(parts, label+": "+entry.Details[label])
	}

	if len(parts) == 0 {
		return "(leer)"
	}
	return strings.Join(parts, "  ")
}

func (m entryListModel) View() string {
	out := titleStyle.Render("Einträge: "+m.category.Name) + "\n\n"

	if len(m.entries) == 0 {
		out += "Noch keine Einträge\n"
	} else {
		for i, entry := range m.entries {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			timestamp := time.UnixMilli(entry.Timestamp).Format("02.01. 15:04")
			out += fmt.Sprintf("%s%s  %s\n", cursor, timestamp, detailsLine(entry, m.category))
		}
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	out += "\n" + helpStyle.Render("esc zurück │ d löschen │ c kopieren")
	return out
}
