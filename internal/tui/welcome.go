package tui

type welcomeModel struct {
	items []string
	idx   int
}

func newWelcomeModel() welcomeModel {
	return welcomeModel{items: []string{"Einloggen", "Registrieren"}}
}

func (m welcomeModel) View() string {
	out := titleStyle.Render("Logbuch") + "\n\nWas möchtest du tun?\n\n"
	for i, item := range m.items {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		out += cursor + item + "\n"
	}
	out += "\n" + helpStyle.Render("q beenden")
	return out
}
