// Package menu implements the interactive terminal menus used by ulpm: a
// prefix-filtered selection list (EntryMenu) and a single-line text field
// (InputMenu). The state machines here never touch a terminal; they consume
// neutral Key events and report every state change to a Renderer.
package menu

import "fmt"

// KeyType identifies the kind of key event.
type KeyType int

const (
	KeyUnknown KeyType = iota
	KeyRune            // printable character, see Key.Rune
	KeyBackspace
	KeyDelete
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyTab
	KeyEnter
	KeyEscape
)

// Key is a single input event as seen by the menus.
type Key struct {
	Type KeyType
	Rune rune
}

// Rune returns a printable-character key.
func Rune(r rune) Key { return Key{Type: KeyRune, Rune: r} }

// Runes expands s into one key per character, handy for typing text.
func Runes(s string) []Key {
	keys := make([]Key, 0, len(s))
	for _, r := range s {
		keys = append(keys, Rune(r))
	}
	return keys
}

// Is reports whether k is the printable character r.
func (k Key) Is(r rune) bool {
	return k.Type == KeyRune && k.Rune == r
}

// isUp matches the "previous" aliases: Up, Left and vim-style k.
func (k Key) isUp() bool {
	return k.Type == KeyUp || k.Type == KeyLeft || k.Is('k') || k.Is('K')
}

// isDown matches the "next" aliases: Down, Right and vim-style j.
func (k Key) isDown() bool {
	return k.Type == KeyDown || k.Type == KeyRight || k.Is('j') || k.Is('J')
}

func (k Key) String() string {
	switch k.Type {
	case KeyRune:
		return string(k.Rune)
	case KeyBackspace:
		return "backspace"
	case KeyDelete:
		return "delete"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyHome:
		return "home"
	case KeyEnd:
		return "end"
	case KeyTab:
		return "tab"
	case KeyEnter:
		return "enter"
	case KeyEscape:
		return "esc"
	default:
		return fmt.Sprintf("key(%d)", int(k.Type))
	}
}
