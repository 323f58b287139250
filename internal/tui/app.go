package tui

import (
	"github.com/MKhiriev/go-schema-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// RootModel owns the pages and the navigation history. It handles the
// global keys and window size; everything else goes to the active page.
type RootModel struct {
	pages   map[string]tea.Model
	active  string
	history []string

	width  int
	height int

	quitByUser    bool
	buildInfo     models.AppBuildInfo
	showBuildInfo bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		pages:     pages,
		active:    startPage,
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	if page := r.current(); page != nil {
		return page.Init()
	}
	return nil
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.width, r.height = msg.Width, msg.Height
		cmds := make([]tea.Cmd, 0, len(r.pages))
		for name, page := range r.pages {
			updated, cmd := page.Update(msg)
			r.pages[name] = updated
			cmds = append(cmds, cmd)
		}
		return r, tea.Batch(cmds...)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			r.quitByUser = true
			return r, tea.Quit
		case "v":
			if r.versionAllowed() {
				r.showBuildInfo = !r.showBuildInfo
				return r, nil
			}
		case "esc":
			if r.showBuildInfo {
				r.showBuildInfo = false
				return r, nil
			}
		}
		if r.showBuildInfo {
			return r, nil
		}

	case NavigateTo:
		if _, ok := r.pages[msg.Page]; !ok {
			return r, nil
		}
		if msg.Page != r.active {
			r.history = append(r.history, r.active)
		}
		return r.open(msg.Page, msg.Payload)

	case navigateBackMsg:
		if len(r.history) == 0 {
			return r, nil
		}
		prev := r.history[len(r.history)-1]
		r.history = r.history[:len(r.history)-1]
		return r.open(prev, nil)

	case quitMsg:
		return r, tea.Quit
	}

	page := r.current()
	if page == nil {
		return r, nil
	}
	updated, cmd := page.Update(msg)
	r.pages[r.active] = updated
	return r, cmd
}

// open activates page. A payload is delivered to it instead of Init, so the
// page can reset itself for the new subject.
func (r RootModel) open(page string, payload tea.Msg) (tea.Model, tea.Cmd) {
	r.showBuildInfo = false
	r.active = page
	if payload != nil {
		return r, func() tea.Msg { return payload }
	}
	return r, r.current().Init()
}

func (r RootModel) current() tea.Model {
	return r.pages[r.active]
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		window := renderBuildInfoWindow(r.buildInfo)
		if r.width > 0 && r.height > 0 {
			return lipgloss.Place(r.width, r.height, lipgloss.Center, lipgloss.Center, window)
		}
		return window
	}
	page := r.current()
	if page == nil {
		return renderPage("TUI", "", "")
	}
	return page.View()
}

// versionAllowed reports whether the type list is shown without a pending
// confirmation, the only place the version window may open.
func (r RootModel) versionAllowed() bool {
	m, ok := r.current().(*typesModel)
	return ok && m.confirm == nil && m.overlay == nil
}
