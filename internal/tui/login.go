package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

type loginModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newLoginModel() loginModel {
	loginInput := textinput.New()
	loginInput.Placeholder = "Benutzername"
	loginInput.CharLimit = 64
	loginInput.Width = 40
	loginInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "Passwort"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return loginModel{inputs: []textinput.Model{loginInput, passwordInput}}
}

func (m loginModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Login") + "\n\n")
	b.WriteString("Benutzername │ [" + m.inputs[0].View() + "]\n")
	b.WriteString("Passwort     │ [" + m.inputs[1].View() + "]\n")

	if m.submitting {
		b.WriteString("\n[Einloggen...]\n")
	} else {
		b.WriteString("\n[Einloggen]\n")
	}

	b.WriteString("\n" + helpStyle.Render("esc zurück │ tab nächstes Feld │ enter bestätigen"))
	return b.String()
}
