package track

import (
	"testing"
	"time"

	"github.com/mhenke/logbuch/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var nutritionCat = models.Category{
	ID:          3,
	Name:        "Ernährung",
	SpecialType: models.SpecialTypeNutrition,
	Fields: []models.Field{
		{Label: "Kalorien", Unit: "kcal"},
		{Label: "Menge", Unit: "g"},
	},
}

func TestBuildEntry_KcalUnitBecomesPrimaryValue(t *testing.T) {
	form := NewForm(nutritionCat)
	form[0].Value = "250"
	form[1].Value = "100"

	entry := BuildEntry(nutritionCat, form, time.UnixMilli(1700000000000))

	assert.Equal(t, 250.0, entry.PrimaryValue)
	assert.Equal(t, map[string]string{
		"Kalorien": "250 kcal",
		"Menge":    "100 g",
	}, entry.Details)
	assert.Equal(t, "cat_3", entry.CategoryRef)
	assert.Equal(t, "Ernährung", entry.DisplayText)
	assert.Equal(t, int64(1700000000000), entry.Timestamp)
}

func TestBuildEntry_FirstFieldFallbackWithoutKcal(t *testing.T) {
	cat := models.Category{
		ID:   4,
		Name: "Fitness",
		Fields: []models.Field{
			{Label: "Dauer", Unit: "min"},
		},
	}

	form := NewForm(cat)
	form[0].Value = "30"

	entry := BuildEntry(cat, form, time.Now())

	assert.Equal(t, 30.0, entry.PrimaryValue)
	assert.Equal(t, map[string]string{"Dauer": "30 min"}, entry.Details)
}

func TestBuildEntry_AllEmpty(t *testing.T) {
	form := NewForm(nutritionCat)

	entry := BuildEntry(nutritionCat, form, time.Now())

	assert.Zero(t, entry.PrimaryValue)
	assert.Empty(t, entry.Details)
}

func TestBuildEntry_NonNumericFallbackYieldsZero(t *testing.T) {
	cat := models.Category{
		Name:   "Stimmung",
		Fields: []models.Field{{Label: "Gefühl", Unit: "1-10"}, {Label: "Notiz", Unit: ""}},
	}

	form := NewForm(cat)
	form[0].Value = "gut"
	form[1].Value = "langer Tag"

	entry := BuildEntry(cat, form, time.Now())

	assert.Zero(t, entry.PrimaryValue)
	assert.Equal(t, map[string]string{
		"Gefühl": "gut 1-10",
		"Notiz":  "langer Tag ",
	}, entry.Details)
}

func TestBuildEntry_UnitMatchIsCaseInsensitive(t *testing.T) {
	cat := models.Category{
		Name:   "Essen",
		Fields: []models.Field{{Label: "Energie", Unit: "KCal"}},
	}

	form := NewForm(cat)
	form[0].Value = "412.5"

	entry := BuildEntry(cat, form, time.Now())

	assert.Equal(t, 412.5, entry.PrimaryValue)
}

func TestBuildEntry_LaterKcalFieldWins(t *testing.T) {
	cat := models.Category{
		Name: "Doppelt",
		Fields: []models.Field{
			{Label: "Frühstück", Unit: "kcal"},
			{Label: "Abendessen", Unit: "kcal"},
		},
	}

	form := NewForm(cat)
	form[0].Value = "300"
	form[1].Value = "700"

	entry := BuildEntry(cat, form, time.Now())

	assert.Equal(t, 700.0, entry.PrimaryValue)
}

func TestBuildEntry_SkipsEmptySlots(t *testing.T) {
	form := NewForm(nutritionCat)
	form[1].Value = "50"

	entry := BuildEntry(nutritionCat, form, time.Now())

	require.NotContains(t, entry.Details, "Kalorien")
	assert.Equal(t, map[string]string{"Menge": "50 g"}, entry.Details)
	// no kcal value and the first slot is empty, so no fallback applies
	assert.Zero(t, entry.PrimaryValue)
}

func Test_parseLeadingFloat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{name: "plain integer", input: "30", want: 30},
		{name: "decimal", input: "12.5", want: 12.5},
		{name: "negative", input: "-4", want: -4},
		{name: "number with unit suffix", input: "250 kcal", want: 250},
		{name: "number glued to unit", input: "12.5g", want: 12.5},
		{name: "surrounding spaces", input: "  7 ", want: 7},
		{name: "not a number", input: "gut", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseLeadingFloat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
