package menu

import "slices"

// EntryMenu is the filterable single-select list. Typing narrows the
// candidates to those starting with the query; Tab, Down and Enter move
// between the query field and the result list.
type EntryMenu struct {
	prompt  string
	options []string

	query    []rune
	filtered []string
	cursor   int // absolute screen column
	focus    Focus

	selected int
	offset   int
	window   Window

	confirm exitConfirm
	layout  Layout
	render  Renderer

	status Status
	value  string
}

// NewEntryMenu builds the menu for options, seeding the query with def.
// When def matches at least one option the menu starts on the result list
// with the first match selected. It does not draw anything; call Draw.
func NewEntryMenu(prompt string, options []string, def string, l Layout, r Renderer) *EntryMenu {
	if r == nil {
		r = NopRenderer{}
	}
	m := &EntryMenu{
		prompt:  prompt,
		options: slices.Clone(options),
		query:   []rune(def),
		layout:  l,
		render:  r,
		focus:   FocusFilter,
	}
	m.cursor = SearchFieldStart + len(m.query)
	m.filtered = Filter(m.options, def)
	if def != "" && len(m.filtered) > 0 {
		m.focus = FocusList
	}
	m.reflow()
	return m
}

// Empty reports whether there is nothing to select. Callers should not run
// an input loop for an empty menu.
func (m *EntryMenu) Empty() bool { return len(m.options) == 0 }

func (m *EntryMenu) Query() string      { return string(m.query) }
func (m *EntryMenu) Filtered() []string { return m.filtered }
func (m *EntryMenu) Selected() int      { return m.selected }
func (m *EntryMenu) Offset() int        { return m.offset }
func (m *EntryMenu) Cursor() int        { return m.cursor }
func (m *EntryMenu) Focus() Focus       { return m.focus }
func (m *EntryMenu) Confirming() bool   { return m.confirm.active }
func (m *EntryMenu) Choice() Choice     { return m.confirm.choice }
func (m *EntryMenu) Status() Status     { return m.status }

// Value is the chosen option once Status is Done.
func (m *EntryMenu) Value() string { return m.value }

// Resize updates the terminal geometry and redraws.
func (m *EntryMenu) Resize(l Layout) {
	m.layout = l
	m.Draw()
}

// HandleKey applies one key and redraws unless the menu finished.
func (m *EntryMenu) HandleKey(k Key) Status {
	if m.status != Pending {
		return m.status
	}

	switch {
	case m.confirm.active:
		m.status = m.confirm.handle(k)
	case k.Type == KeyTab:
		m.toggleFocus()
	case k.Type == KeyEscape:
		m.confirm.open()
	case m.focus == FocusFilter:
		m.handleFilterKey(k)
	default:
		m.handleListKey(k)
	}

	if m.status == Pending {
		m.Draw()
	}
	return m.status
}

func (m *EntryMenu) handleFilterKey(k Key) {
	start := SearchFieldStart
	end := start + len(m.query)

	switch k.Type {
	case KeyRune:
		m.query = slices.Insert(m.query, m.cursor-start, k.Rune)
		m.cursor++
		m.refilter()
	case KeyBackspace:
		if m.cursor > start {
			m.cursor--
			m.query = slices.Delete(m.query, m.cursor-start, m.cursor-start+1)
			m.refilter()
		}
	case KeyDelete:
		if m.cursor < end {
			m.query = slices.Delete(m.query, m.cursor-start, m.cursor-start+1)
			m.refilter()
		}
	case KeyLeft:
		if m.cursor > start {
			m.cursor--
		}
	case KeyRight:
		if m.cursor < end {
			m.cursor++
		}
	case KeyHome:
		m.cursor = start
	case KeyEnd:
		m.cursor = end
	case KeyDown, KeyEnter:
		m.focus = FocusList
	}
}

func (m *EntryMenu) handleListKey(k Key) {
	switch {
	case k.isDown():
		if m.selected < len(m.filtered)-1 {
			m.selected++
			if m.selected >= m.offset+m.layout.MaxVisible() {
				m.offset++
			}
		}
	case k.isUp():
		if m.selected == 0 {
			m.focus = FocusFilter
			return
		}
		m.selected--
		if m.selected < m.offset {
			m.offset--
		}
	case k.Type == KeyEnter:
		if len(m.filtered) > 0 {
			m.value = m.filtered[m.selected]
			m.status = Done
		}
	}
}

func (m *EntryMenu) toggleFocus() {
	if m.focus == FocusFilter {
		m.focus = FocusList
	} else {
		m.focus = FocusFilter
	}
}

// refilter recomputes the candidates after a query edit and restarts
// browsing from the top.
func (m *EntryMenu) refilter() {
	m.filtered = Filter(m.options, string(m.query))
	m.selected = 0
	m.offset = 0
}

// items is the list handed to the renderer.
func (m *EntryMenu) items() []string {
	if len(m.query) == 0 {
		return m.options
	}
	return m.filtered
}

// reflow recomputes the render window and writes the scroll offset back.
func (m *EntryMenu) reflow() {
	m.window = Compute(m.items(), m.selected, m.offset, m.layout)
	m.offset = m.window.Offset
}

// View returns the values the next frame is drawn from.
func (m *EntryMenu) View() SearchView {
	return SearchView{
		Query:    string(m.query),
		Prompt:   m.prompt,
		Items:    m.items(),
		Selected: m.selected,
		Window:   m.window,
		Cursor:   m.cursor,
		Focus:    m.focus,
	}
}

// Draw recomputes the window and hands the current state to the renderer.
func (m *EntryMenu) Draw() {
	if m.confirm.active {
		m.render.DrawExitConfirm(m.confirm.choice)
		return
	}
	m.reflow()
	m.render.DrawSearchBox(m.View())
}
