package tui

import tea "github.com/charmbracelet/bubbletea"

type errorOverlayModel struct {
	message string
}

func newErrorOverlay(err error) *errorOverlayModel {
	return &errorOverlayModel{message: humanizeError(err)}
}

// closes reports whether msg dismisses the overlay.
func (m errorOverlayModel) closes(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "enter", "esc":
		return true
	}
	return false
}

func (m errorOverlayModel) View() string {
	content := "Ошибка\n\n" + m.message + "\n\nenter / esc закрыть"
	return overlayBoxStyle.Render(content)
}
