package tui

type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	content := errorStyle.Render("Fehler") + "\n\n" + m.message + "\n\nenter / esc schließen"
	return overlayBoxStyle.Render(content)
}
