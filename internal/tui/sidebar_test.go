package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mhenke/logbuch/models"
)

func TestCategoryIcon(t *testing.T) {
	assert.Equal(t, " 🏃", categoryIcon(models.SpecialTypeFitness))
	assert.Equal(t, " 🍎", categoryIcon(models.SpecialTypeNutrition))
	assert.Equal(t, " 🧠", categoryIcon(models.SpecialTypeMood))
	assert.Equal(t, "", categoryIcon(models.SpecialTypeCustom))
	assert.Equal(t, "", categoryIcon(models.SpecialTypeNone))
}

func TestSidebarView_DecoratesSeededCategories(t *testing.T) {
	m := sidebarModel{
		categories: []models.Category{
			{Name: "Ernährung", SpecialType: models.SpecialTypeNutrition},
			{Name: "Lesen", SpecialType: models.SpecialTypeCustom},
		},
	}

	view := m.View()
	assert.Contains(t, view, "Ernährung 🍎")
	assert.Contains(t, view, "Lesen\n")
}
