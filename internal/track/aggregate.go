package track

import (
	"strconv"
	"strings"
	"time"

	"github.com/mhenke/logbuch/models"
)

// kcalUnitMarker promotes a field's value to the entry's primary value when
// it appears anywhere in the field's unit, case-insensitively.
const kcalUnitMarker = "kcal"

// BuildEntry collapses the current form state into an [models.Entry] for the
// given category.
//
// For every non-empty slot the entry records details[label] = "<value> <unit>".
// The primary value is chosen as follows:
//  1. the value of the first slot whose unit contains "kcal" (scanning in
//     declaration order, later kcal slots overwrite earlier ones, matching
//     a full scan);
//  2. otherwise the first slot's value, if it is non-empty and numeric;
//  3. otherwise 0.
//
// The entry's timestamp is set from now (client clock, unix milliseconds).
// A form with zero filled slots still produces a valid entry with empty
// details; submitting such entries is existing product behavior and is not
// guarded against here.
func BuildEntry(cat models.Category, form Form, now time.Time) models.Entry {
	details := make(map[string]string)
	primary := 0.0
	primaryFound := false

	for _, slot := range form {
		value := slot.Value
		if value == "" {
			continue
		}

		details[slot.Field.Label] = value + " " + slot.Field.Unit

		if strings.Contains(strings.ToLower(slot.Field.Unit), kcalUnitMarker) {
			if parsed, err := parseLeadingFloat(value); err == nil {
				primary = parsed
				primaryFound = true
			}
		}
	}

	if !primaryFound && len(form) > 0 && form[0].Value != "" {
		if parsed, err := parseLeadingFloat(form[0].Value); err == nil {
			primary = parsed
		}
	}

	return models.Entry{
		CategoryRef:  cat.Ref(),
		DisplayText:  cat.Name,
		PrimaryValue: primary,
		Details:      details,
		Timestamp:    now.UnixMilli(),
	}
}

// parseLeadingFloat parses the longest numeric prefix of s, so that inputs
// like "250 kcal" or "12.5g" still yield their number. Returns an error when
// s does not start with a number at all.
func parseLeadingFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)

	end := 0
	seenDot := false
	for i, r := range s {
		if r == '-' && i == 0 {
			end++
			continue
		}
		if r == '.' && !seenDot {
			seenDot = true
			end++
			continue
		}
		if r >= '0' && r <= '9' {
			end = i + 1
			continue
		}
		break
	}

	return strconv.ParseFloat(s[:end], 64)
}
