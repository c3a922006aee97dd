package tui

import (
	"github.com/mhenke/logbuch/models"
)

type authDoneMsg struct {
	username string
	err      error
}

type categoriesLoadedMsg struct {
	categories []models.Category
	err        error
}

type entriesLoadedMsg struct {
	entries []models.Entry
	err     error
}

type entrySavedMsg struct {
	err error
}

type entryDeletedMsg struct {
	err error
}

type categorySavedMsg struct {
	err error
}

type resetDoneMsg struct {
	err error
}

type productFoundMsg struct {
	product models.Product
	err     error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
