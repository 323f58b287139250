package tui

type confirmModel struct {
	message string
	warning string
}

func (m confirmModel) View() string {
	content := "Удалить \"" + m.message + "\"?\n\n"
	if m.warning != "" {
		content += errorStyle.Render(m.warning) + "\n\n"
	}
	content += "y да    n нет"
	return overlayBoxStyle.Render(content)
}
