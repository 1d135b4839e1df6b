package menu

// Focus is the region of the entry menu receiving navigation keys.
type Focus int

const (
	FocusFilter Focus = iota
	FocusList
)

func (f Focus) String() string {
	if f == FocusList {
		return "list"
	}
	return "filter"
}

// SearchView is everything the renderer needs to draw the entry menu.
type SearchView struct {
	Query  string
	Prompt string
	// Items is the full candidate list when the query is empty, otherwise
	// the filtered list.
	Items    []string
	Selected int
	Window   Window
	// Cursor is the absolute screen column of the caret in the query line.
	Cursor int
	Focus  Focus
}

// Visible returns the items inside the window.
func (v SearchView) Visible() []string {
	start := min(v.Window.Offset, len(v.Items))
	end := min(start+v.Window.Count, len(v.Items))
	return v.Items[start:end]
}

// InputView is everything the renderer needs to draw the input box.
type InputView struct {
	Prompt string
	Text   string
	// Cursor is the caret offset into Text, in characters.
	Cursor int
}

// Renderer draws menu state. The menus call exactly one method after every
// state change, passing values they already computed.
type Renderer interface {
	DrawSearchBox(v SearchView)
	DrawInputBox(v InputView)
	DrawExitConfirm(choice Choice)
}

// NopRenderer discards every frame.
type NopRenderer struct{}

func (NopRenderer) DrawSearchBox(SearchView) {}
func (NopRenderer) DrawInputBox(InputView)   {}
func (NopRenderer) DrawExitConfirm(Choice)   {}
