package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/toni500git/ulpm/pkg/menu"
)

// driver is the part of the menu state machines the program loop needs.
type driver interface {
	HandleKey(k menu.Key) menu.Status
	Status() menu.Status
	Draw()
}

// MenuModel runs one menu inside a bubbletea program. Every key message is
// translated and applied before the next one is read; the program quits as
// soon as the menu leaves the Pending state.
type MenuModel struct {
	menu  driver
	frame *Frame
	keys  KeyMap
}

// NewMenuModel wraps a menu whose renderer is frame.
func NewMenuModel(m driver, frame *Frame, keys KeyMap) MenuModel {
	return MenuModel{menu: m, frame: frame, keys: keys}
}

// Init implements tea.Model
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		l := menu.Layout{Rows: msg.Height, Cols: msg.Width}
		m.frame.SetLayout(l)
		if r, ok := m.menu.(interface{ Resize(menu.Layout) }); ok {
			r.Resize(l)
		} else {
			m.menu.Draw()
		}
	case tea.KeyMsg:
		for _, k := range m.keys.Translate(msg) {
			if m.menu.HandleKey(k) != menu.Pending {
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

// View implements tea.Model
func (m MenuModel) View() string {
	if m.menu.Status() != menu.Pending {
		return ""
	}
	return m.frame.View()
}

// Status reports the wrapped menu's outcome.
func (m MenuModel) Status() menu.Status {
	return m.menu.Status()
}
