package ui

import (
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/toni500git/ulpm/pkg/menu"
)

// KeyMap binds terminal keys to the menus' neutral key set. Letters such as
// j, k and q are never bound here: they reach the menus as printable runes
// and the state machines decide what they mean.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Home      key.Binding
	End       key.Binding
	Tab       key.Binding
	Enter     key.Binding
	Escape    key.Binding
	Backspace key.Binding
	Delete    key.Binding
}

// DefaultKeyMap returns the bindings used by ulpm. Ctrl+C behaves like
// Escape so an interrupt still goes through the exit confirmation.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:        key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓/j", "down")),
		Left:      key.NewBinding(key.WithKeys("left", "ctrl+b"), key.WithHelp("←", "left")),
		Right:     key.NewBinding(key.WithKeys("right", "ctrl+f"), key.WithHelp("→", "right")),
		Home:      key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "start")),
		End:       key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "end")),
		Tab:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch focus")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Escape:    key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("⌫", "delete")),
		Delete:    key.NewBinding(key.WithKeys("delete", "ctrl+d"), key.WithHelp("del", "delete forward")),
	}
}

// Translate converts a bubbletea key message into menu keys. Pasted text
// arrives as a single message with many runes and yields one key per rune;
// unbound and non-printable keys yield nothing.
func (km KeyMap) Translate(msg tea.KeyMsg) []menu.Key {
	switch msg.Type {
	case tea.KeyRunes:
		if msg.Alt {
			return nil
		}
		keys := make([]menu.Key, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			if IsPrintableRune(r) {
				keys = append(keys, menu.Rune(r))
			}
		}
		return keys
	case tea.KeySpace:
		return []menu.Key{menu.Rune(' ')}
	}

	var t menu.KeyType
	switch {
	case key.Matches(msg, km.Up):
		t = menu.KeyUp
	case key.Matches(msg, km.Down):
		t = menu.KeyDown
	case key.Matches(msg, km.Left):
		t = menu.KeyLeft
	case key.Matches(msg, km.Right):
		t = menu.KeyRight
	case key.Matches(msg, km.Home):
		t = menu.KeyHome
	case key.Matches(msg, km.End):
		t = menu.KeyEnd
	case key.Matches(msg, km.Tab):
		t = menu.KeyTab
	case key.Matches(msg, km.Enter):
		t = menu.KeyEnter
	case key.Matches(msg, km.Escape):
		t = menu.KeyEscape
	case key.Matches(msg, km.Backspace):
		t = menu.KeyBackspace
	case key.Matches(msg, km.Delete):
		t = menu.KeyDelete
	default:
		return nil
	}
	return []menu.Key{{Type: t}}
}

// IsPrintableRune reports whether r may be inserted into a text field.
func IsPrintableRune(r rune) bool {
	return unicode.IsPrint(r)
}

// filterHelp lists the hints shown while typing a query.
func (km KeyMap) filterHelp() []key.Binding {
	return []key.Binding{km.Tab, km.Down, km.Escape}
}

// listHelp lists the hints shown while browsing results.
func (km KeyMap) listHelp() []key.Binding {
	return []key.Binding{km.Up, km.Down, km.Enter, km.Tab, km.Escape}
}

// inputHelp lists the hints shown under the input box.
func (km KeyMap) inputHelp() []key.Binding {
	enter := km.Enter
	enter.SetHelp("enter", "confirm")
	return []key.Binding{enter, km.Home, km.End, km.Escape}
}
