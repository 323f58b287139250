package tui

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// promptModel edits a single value in place. Single-line values commit on
// enter; multi-line ones on ctrl+s. esc cancels both.
type promptModel struct {
	label     string
	multiline bool
	input     textinput.Model
	area      textarea.Model
}

func newPrompt(label, value string, multiline bool) *promptModel {
	p := &promptModel{label: label, multiline: multiline}
	if multiline {
		p.area = textarea.New()
		p.area.SetWidth(60)
		p.area.SetHeight(8)
		p.area.SetValue(value)
		p.area.Focus()
		return p
	}

	p.input = textinput.New()
	p.input.Prompt = "> "
	p.input.CharLimit = 4096
	p.input.SetValue(value)
	p.input.CursorEnd()
	p.input.Focus()
	return p
}

// Update returns done=true when the user finished editing; ok tells a
// commit from a cancel.
func (p *promptModel) Update(msg tea.Msg) (done, ok bool, cmd tea.Cmd) {
	if key, isKey := msg.(tea.KeyMsg); isKey {
		switch key.String() {
		case "esc":
			return true, false, nil
		case "enter":
			if !p.multiline {
				return true, true, nil
			}
		case "ctrl+s":
			if p.multiline {
				return true, true, nil
			}
		}
	}

	if p.multiline {
		p.area, cmd = p.area.Update(msg)
	} else {
		p.input, cmd = p.input.Update(msg)
	}
	return false, false, cmd
}

func (p *promptModel) Value() string {
	if p.multiline {
		return p.area.Value()
	}
	return p.input.Value()
}

func (p *promptModel) View() string {
	if p.multiline {
		return focusStyle.Render(p.label) + "\n" + p.area.View() + "\n" + helpStyle.Render("ctrl+s: применить | esc: отмена")
	}
	return focusStyle.Render(p.label) + "\n" + p.input.View() + "\n" + helpStyle.Render("enter: применить | esc: отмена")
}
