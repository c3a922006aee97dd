package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

type registerModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newRegisterModel() registerModel {
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

	repeatInput := textinput.New()
	repeatInput.Placeholder = "Passwort wiederholen"
	repeatInput.CharLimit = 256
	repeatInput.Width = 40
	repeatInput.EchoMode = textinput.EchoPassword
	repeatInput.EchoCharacter = '*'

	return registerModel{inputs: []textinput.Model{loginInput, passwordInput, repeatInput}}
}

func (m registerModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Registrieren") + "\n\n")
	b.WriteString("Benutzername │ [" + m.inputs[0].View() + "]\n")
	b.WriteString("Passwort     │ [" + m.inputs[1].View() + "]\n")
	b.WriteString("Wiederholen  │ [" + m.inputs[2].View() + "]\n")

	if m.submitting {
		b.WriteString("\n[Konto anlegen...]\n")
	} else {
		b.WriteString("\n[Konto anlegen]\n")
	}

	b.WriteString("\n" + helpStyle.Render("esc zurück │ tab nächstes Feld │ enter bestätigen"))
	return b.String()
}
