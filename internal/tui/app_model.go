package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mhenke/logbuch/internal/adapter"
	"github.com/mhenke/logbuch/internal/track"
	"github.com/mhenke/logbuch/models"
)

type screen int

const (
	screenWelcome screen = iota
	screenLogin
	screenRegister
	screenSidebar
	screenEntryForm
	screenEntryList
	screenCategoryForm
	screenSummary
)

type appMode int

const (
	modeLogin appMode = iota
	modeMain
)

type confirmAction int

const (
	confirmNone confirmAction = iota
	confirmDeleteEntry
	confirmReset
)

type appModel struct {
	ctx     context.Context
	server  adapter.ServerAdapter
	catalog adapter.ProductCatalog

	mode          appMode
	currentScreen screen

	welcome      welcomeModel
	login        loginModel
	register     registerModel
	sidebar      sidebarModel
	entryForm    entryFormModel
	entryList    entryListModel
	categoryForm categoryFormModel
	summary      summaryModel

	// entries holds every entry of the user; screens filter it locally, the
	// same way the web UI kept one entry array per page load.
	entries []models.Entry

	username string

	err           error
	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	confirmWhat   confirmAction
	pendingDelete int64

	logout         bool
	resultUsername string
}

func newLoginAppModel(ctx context.Context, server adapter.ServerAdapter, catalog adapter.ProductCatalog) appModel {
	return appModel{
		ctx:           ctx,
		server:        server,
		catalog:       catalog,
		mode:          modeLogin,
		currentScreen: screenWelcome,
		welcome:       newWelcomeModel(),
		login:         newLoginModel(),
		register:      newRegisterModel(),
		sidebar:       newSidebarModel(),
	}
}

func newMainAppModel(ctx context.Context, server adapter.ServerAdapter, catalog adapter.ProductCatalog, username string) appModel {
	m := newLoginAppModel(ctx, server, catalog)
	m.mode = modeMain
	m.username = username
	m.currentScreen = screenSidebar
	m.sidebar.username = username
	m.sidebar.loading = true
	return m
}

func (m appModel) Init() tea.Cmd {
	if m.mode == modeMain {
		return m.cmdLoadCategories()
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				switch m.confirmWhat {
				case confirmDeleteEntry:
					return m, m.cmdDeleteEntry(m.pendingDelete)
				case confirmReset:
					return m, m.cmdReset()
				}
				return m, nil
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.confirmWhat = confirmNone
				m.pendingDelete = 0
			}
			return m, nil
		}
	case authDoneMsg:
		m.setSubmitting(false)
		if msg.err != nil {
			m.showErrorf(humanizeAuthError(msg.err))
			return m, nil
		}
		m.resultUsername = msg.username
		return m, tea.Quit
	case categoriesLoadedMsg:
		m.sidebar.loading = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.sidebar.categories = msg.categories
		if m.sidebar.idx >= len(m.sidebar.categories) {
			m.sidebar.idx = len(m.sidebar.categories) - 1
		}
		if m.sidebar.idx < 0 {
			m.sidebar.idx = 0
		}
		return m, m.cmdLoadEntries()
	case entriesLoadedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.entries = msg.entries
		if m.currentScreen == screenEntryList {
			m.entryList.entries = track.ForCategory(m.entries, m.entryList.category)
			if m.entryList.idx >= len(m.entryList.entries) {
				m.entryList.idx = len(m.entryList.entries) - 1
			}
			if m.entryList.idx < 0 {
				m.entryList.idx = 0
			}
		}
		if m.currentScreen == screenSummary {
			m.summary.groups = track.Summarize(m.entries)
		}
		return m, nil
	case entrySavedMsg:
		m.entryForm.submitting = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.currentScreen = screenSidebar
		return m, m.cmdLoadCategories()
	case entryDeletedMsg:
		m.pendingDelete = 0
		m.confirmWhat = confirmNone
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		return m, m.cmdLoadCategories()
	case categorySavedMsg:
		m.categoryForm.submitting = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.currentScreen = screenSidebar
		return m, m.cmdLoadCategories()
	case resetDoneMsg:
		m.confirmWhat = confirmNone
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.currentScreen = screenSidebar
		m.sidebar.loading = true
		return m, m.cmdLoadCategories()
	case productFoundMsg:
		m.entryForm.searching = false
		if msg.err != nil {
			if errors.Is(msg.err, adapter.ErrProductNotFound) {
				m.entryForm.searchErr = "Nichts gefunden."
			} else {
				m.entryForm.searchErr = "API Fehler."
			}
			return m, nil
		}
		m.entryForm.searchErr = ""
		m.entryForm = m.entryForm.applyProduct(msg.product)
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.entryList.status = "Kopieren fehlgeschlagen."
		} else {
			m.entryList.status = "Kopiert!"
		}
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.entryList.status = ""
		m.sidebar.status = ""
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenLogin:
		return m.updateLogin(msg)
	case screenRegister:
		return m.updateRegister(msg)
	case screenSidebar:
		return m.updateSidebar(msg)
	case screenEntryForm:
		return m.updateEntryForm(msg)
	case screenEntryList:
		return m.updateEntryList(msg)
	case screenCategoryForm:
		return m.updateCategoryForm(msg)
	case screenSummary:
		return m.updateSummary(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenWelcome:
		body = m.welcome.View()
	case screenLogin:
		body = m.login.View()
	case screenRegister:
		body = m.register.View()
	case screenSidebar:
		body = m.sidebar.View()
	case screenEntryForm:
		body = m.entryForm.View()
	case screenEntryList:
		body = m.entryList.View()
	case screenCategoryForm:
		body = m.categoryForm.View()
	case screenSummary:
		body = m.summary.View()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m *appModel) setSubmitting(v bool) {
	m.login.submitting = v
	m.register.submitting = v
	m.entryForm.submitting = v
	m.categoryForm.submitting = v
}

// ─── screen updates ──────────────────────────────────────────────────────────

func (m appModel) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.welcome.idx > 0 {
			m.welcome.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.welcome.idx < len(m.welcome.items)-1 {
			m.welcome.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if m.welcome.idx == 0 {
			m.currentScreen = screenLogin
		} else {
			m.currentScreen = screenRegister
		}
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.login = focusNextLogin(m.login)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.login = focusPrevLogin(m.login)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.login.submitting {
				return m, nil
			}
			login := strings.TrimSpace(m.login.inputs[0].Value())
			pass := m.login.inputs[1].Value()
			if login == "" || pass == "" {
				m.showErrorf("Benutzername und Passwort sind Pflicht")
				return m, nil
			}
			m.login.submitting = true
			return m, m.cmdLogin(models.User{Login: login, Password: pass})
		}
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateRegister(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.register = focusNextRegister(m.register)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.register = focusPrevRegister(m.register)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.register.submitting {
				return m, nil
			}
			login := strings.TrimSpace(m.register.inputs[0].Value())
			pass := m.register.inputs[1].Value()
			repeat := m.register.inputs[2].Value()
			if login == "" || pass == "" {
				m.showErrorf("Benutzername und Passwort sind Pflicht")
				return m, nil
			}
			if pass != repeat {
				m.showErrorf("Passwörter stimmen nicht überein")
				return m, nil
			}
			m.register.submitting = true
			return m, m.cmdRegister(models.User{Login: login, Password: pass})
		}
	}

	var cmd tea.Cmd
	m.register.inputs[m.register.focus], cmd = m.register.inputs[m.register.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateSidebar(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.sidebar.idx > 0 {
			m.sidebar.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.sidebar.idx < len(m.sidebar.categories)-1 {
			m.sidebar.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		cat, ok := m.sidebar.current()
		if !ok {
			return m, nil
		}
		m.entryForm = newEntryFormModel(cat)
		m.currentScreen = screenEntryForm
	case key.Matches(keyMsg, keys.entries):
		cat, ok := m.sidebar.current()
		if !ok {
			return m, nil
		}
		m.entryList = entryListModel{
			category: cat,
			entries:  track.ForCategory(m.entries, cat),
		}
		m.currentScreen = screenEntryList
	case key.Matches(keyMsg, keys.summary):
		m.summary = summaryModel{groups: track.Summarize(m.entries)}
		m.currentScreen = screenSummary
	case key.Matches(keyMsg, keys.newItem):
		m.categoryForm = newCategoryFormModel()
		m.currentScreen = screenCategoryForm
	case key.Matches(keyMsg, keys.reset):
		m.showConfirm = true
		m.confirm.message = "Alles löschen?"
		m.confirmWhat = confirmReset
	case key.Matches(keyMsg, keys.logout):
		m.logout = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateEntryForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenSidebar
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.entryForm = m.entryForm.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.entryForm = m.entryForm.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.entryForm.searchFocused() {
				query := strings.TrimSpace(m.entryForm.search.Value())
				if query == "" {
					return m, nil
				}
				m.entryForm.searching = true
				m.entryForm.searchErr = ""
				return m, m.cmdSearchProduct(query)
			}
			if m.entryForm.submitting {
				return m, nil
			}
			m.entryForm.submitting = true
			entry := track.BuildEntry(m.entryForm.category, m.entryForm.currentForm(), time.Now())
			return m, m.cmdCreateEntry(entry)
		}
	}

	var cmd tea.Cmd
	if m.entryForm.searchFocused() {
		m.entryForm.search, cmd = m.entryForm.search.Update(msg)
		return m, cmd
	}
	if i := m.entryForm.fieldIndex(); i >= 0 && i < len(m.entryForm.inputs) {
		m.entryForm.inputs[i], cmd = m.entryForm.inputs[i].Update(msg)
	}
	return m, cmd
}

func (m appModel) updateEntryList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenSidebar
	case key.Matches(keyMsg, keys.up):
		if m.entryList.idx > 0 {
			m.entryList.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.entryList.idx < len(m.entryList.entries)-1 {
			m.entryList.idx++
		}
	case key.Matches(keyMsg, keys.delete):
		entry, ok := m.entryList.current()
		if !ok {
			return m, nil
		}
		m.showConfirm = true
		m.confirm.message = "Eintrag löschen?"
		m.confirmWhat = confirmDeleteEntry
		m.pendingDelete = entry.ID
	case key.Matches(keyMsg, keys.copy):
		entry, ok := m.entryList.current()
		if !ok {
			return m, nil
		}
		return m, cmdCopyToClipboard(detailsLine(entry, m.entryList.category))
	}

	return m, nil
}

func (m appModel) updateCategoryForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenSidebar
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.categoryForm = m.categoryForm.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.categoryForm = m.categoryForm.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.addField):
			m.categoryForm = m.categoryForm.addFieldRow()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.categoryForm.submitting {
				return m, nil
			}
			cat := m.categoryForm.toCategory()
			if cat.Name == "" || len(cat.Fields) == 0 {
				m.showErrorf("Fehlt was!")
				return m, nil
			}
			m.categoryForm.submitting = true
			return m, m.cmdCreateCategory(cat)
		}
	}

	var cmd tea.Cmd
	input := m.categoryForm.inputAt(m.categoryForm.focus)
	*input, cmd = input.Update(msg)
	return m, cmd
}

func (m appModel) updateSummary(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if key.Matches(keyMsg, keys.esc) {
		m.currentScreen = screenSidebar
	}
	return m, nil
}

// ─── commands ────────────────────────────────────────────────────────────────

func (m appModel) cmdLogin(user models.User) tea.Cmd {
	ctx := m.ctx
	server := m.server
	return func() tea.Msg {
		loginResponse, err := server.Login(ctx, user)
		if err != nil {
			return authDoneMsg{err: err}
		}
		return authDoneMsg{username: loginResponse.Username}
	}
}

func (m appModel) cmdRegister(user models.User) tea.Cmd {
	ctx := m.ctx
	server := m.server
	return func() tea.Msg {
		loginResponse, err := server.Register(ctx, user)
		if err != nil {
			return authDoneMsg{err: err}
		}
		return authDoneMsg{username: loginResponse.Username}
	}
}

func (m appModel) cmdLoadCategories() tea.Cmd {
	ctx := m.ctx
	server := m.server
	return func() tea.Msg {
		categories, err := server.Categories(ctx)
		return categoriesLoadedMsg{categories: categories, err: err}
	}
}

func (m appModel) cmdLoadEntries() tea.Cmd {
	ctx := m.ctx
	server := m.server
	return func() tea.Msg {
		entries, err := server.Entries(ctx, "")
		return entriesLoadedMsg{entries: entries, err: err}
	}
}

func (m appModel) cmdCreateEntry(entry models.Entry) tea.Cmd {
	ctx := m.ctx
	server := m.server
	return func() tea.Msg {
		_, err := server.CreateEntry(ctx, entry)
		return entrySavedMsg{err: err}
	}
}

func (m appModel) cmdDeleteEntry(entryID int64) tea.Cmd {
	ctx := m.ctx
	server := m.server
	return func() tea.Msg {
		err := server.DeleteEntry(ctx, entryID)
		return entryDeletedMsg{err: err}
	}
}

func (m appModel) cmdCreateCategory(cat models.Category) tea.Cmd {
	ctx := m.ctx
	server := m.server
	return func() tea.Msg {
		_, err := server.CreateCategory(ctx, cat)
		return categorySavedMsg{err: err}
	}
}

func (m appModel) cmdReset() tea.Cmd {
	ctx := m.ctx
	server := m.server
	return func() tea.Msg {
		return resetDoneMsg{err: server.Reset(ctx)}
	}
}

func (m appModel) cmdSearchProduct(query string) tea.Cmd {
	ctx := m.ctx
	catalog := m.catalog
	return func() tea.Msg {
		product, err := catalog.SearchProduct(ctx, query)
		return productFoundMsg{product: product, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(text)}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// humanizeAuthError maps transport errors to the short German messages the
// login screen shows.
func humanizeAuthError(err error) string {
	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return "Benutzername oder Passwort falsch"
	case errors.Is(err, adapter.ErrConflict):
		return "Benutzername ist schon vergeben"
	default:
		return "Server nicht erreichbar"
	}
}

func focusNextLogin(m loginModel) loginModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevLogin(m loginModel) loginModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusNextRegister(m registerModel) registerModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevRegister(m registerModel) registerModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}
