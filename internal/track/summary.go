package track

import "github.com/mhenke/logbuch/models"

// Group is one bar of the summary chart: a category label and the sum of
// primary values recorded under it.
type Group struct {
	Label string
	Total float64
}

// Summarize groups entries by their denormalized display text and sums the
// primary values per group, preserving first-seen order.
//
// Grouping deliberately keys on the category name captured at entry time,
// not the live category id: renaming a category splits its history into two
// groups, which is accepted behavior. Summarize is a pure function of its
// input and can be re-run on the same list with identical results.
func Summarize(entries []models.Entry) []Group {
	index := make(map[string]int, len(entries))
	groups := make([]Group, 0, len(entries))

	for _, entry := range entries {
		i, seen := index[entry.DisplayText]
		if !seen {
			i = len(groups)
			index[entry.DisplayText] = i
			groups = append(groups, Group{Label: entry.DisplayText})
		}
		groups[i].Total += entry.PrimaryValue
	}

	return groups
}

// ForCategory filters entries down to those referencing cat by derived key.
// Used for the per-category entry list below the form.
func ForCategory(entries []models.Entry, cat models.Category) []models.Entry {
	ref := cat.Ref()

	var filtered []models.Entry
	for _, entry := range entries {
		if entry.CategoryRef == ref {
			filtered = append(filtered, entry)
		}
	}

	return filtered
}
