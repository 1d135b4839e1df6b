package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/toni500git/ulpm/pkg/menu"
)

// Frame draws menu state with lipgloss. It implements menu.Renderer; each
// Draw call replaces the stored frame, which the bubbletea model returns
// from View.
type Frame struct {
	theme  Theme
	keys   KeyMap
	help   help.Model
	layout menu.Layout
	view   string
}

// NewFrame creates a renderer for the given theme and key bindings.
func NewFrame(theme Theme, keys KeyMap, l menu.Layout) *Frame {
	h := help.New()
	h.Styles.ShortKey = theme.Renderer.NewStyle().Foreground(theme.Primary)
	h.Styles.ShortDesc = theme.Renderer.NewStyle().Foreground(theme.Subtext)
	h.Styles.ShortSeparator = theme.Renderer.NewStyle().Foreground(theme.Border)
	f := &Frame{
		theme: theme,
		keys:  keys,
		help:  h,
	}
	f.SetLayout(l)
	return f
}

// SetLayout changes the size subsequent frames are drawn at.
func (f *Frame) SetLayout(l menu.Layout) {
	f.layout = l
	f.help.Width = max(l.Cols-2, 0)
}

// View returns the last drawn frame.
func (f *Frame) View() string { return f.view }

func (f *Frame) innerWidth() int  { return max(f.layout.Cols-2, 1) }
func (f *Frame) innerHeight() int { return max(f.layout.Rows-2, 1) }

// DrawSearchBox lays the entry menu out as: query line, divider, prompt,
// blank line, then the windowed items, each followed by a spacing row.
func (f *Frame) DrawSearchBox(v menu.SearchView) {
	t := f.theme
	width := f.innerWidth()

	lines := make([]string, 0, f.innerHeight())

	// Query line. The label starts one cell in from the border so the query
	// text lands on menu.SearchFieldStart.
	label := t.Renderer.NewStyle().Foreground(t.Secondary).Bold(true).Render(menu.SearchLabel)
	query := f.cursorLine(v.Query, v.Cursor-menu.SearchFieldStart, v.Focus == menu.FocusFilter,
		width-1-len(menu.SearchLabel))
	lines = append(lines, " "+label+query)
	lines = append(lines, t.RenderDivider(width))

	prompt := runewidth.Truncate(v.Prompt, width-1, "…")
	lines = append(lines, " "+t.Renderer.NewStyle().Foreground(t.Primary).Bold(true).Render(prompt))
	lines = append(lines, "")

	wrapWidth := f.layout.WrapWidth()
	visible := v.Visible()
	if len(visible) == 0 {
		empty := "No matches"
		if v.Query == "" {
			empty = "Nothing to choose from"
		}
		lines = append(lines, strings.Repeat(" ", 5)+
			t.Renderer.NewStyle().Foreground(t.Subtext).Italic(true).Render(empty))
	}
	for i, item := range visible {
		idx := v.Window.Offset + i
		selected := idx == v.Selected

		style := t.Base
		marker := "   "
		if selected {
			marker = " ▸ "
			style = t.Renderer.NewStyle().Foreground(t.Primary)
			if v.Focus == menu.FocusList {
				style = style.Bold(true).Reverse(true)
			}
		}

		rows, err := menu.Wrap(item, wrapWidth)
		if err != nil {
			rows = []string{item}
		}
		for j, row := range rows {
			prefix := "     "
			if j == 0 {
				prefix = marker + "  "
			}
			lines = append(lines, prefix+style.Render(row))
		}
		lines = append(lines, "")
	}

	f.view = f.box(lines, f.help.ShortHelpView(f.searchHelp(v.Focus)), v.Focus == menu.FocusList)
}

func (f *Frame) searchHelp(focus menu.Focus) []key.Binding {
	if focus == menu.FocusList {
		return f.keys.listHelp()
	}
	return f.keys.filterHelp()
}

// DrawInputBox draws the prompt and the editable text on a single line,
// vertically centred.
func (f *Frame) DrawInputBox(v menu.InputView) {
	t := f.theme
	width := f.innerWidth()

	prompt := t.Renderer.NewStyle().Foreground(t.Primary).Bold(true).Render(v.Prompt)
	text := f.cursorLine(v.Text, v.Cursor, true, width-1-runewidth.StringWidth(v.Prompt)-1)
	line := padRight(" "+prompt+" "+text, width)
	hint := padRight(" "+f.help.ShortHelpView(f.keys.inputHelp()), width)

	box := t.boxStyle(true).Render(line)
	f.view = lipgloss.Place(f.layout.Cols, f.layout.Rows, lipgloss.Left, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Left, box, hint))
}

// DrawExitConfirm draws the centred yes/no modal.
func (f *Frame) DrawExitConfirm(choice menu.Choice) {
	t := f.theme

	button := func(label string, active bool) string {
		s := t.Renderer.NewStyle().Padding(0, SpaceMD)
		if active {
			return s.Foreground(ColorText).Background(t.Danger).Bold(true).Render(label)
		}
		return s.Foreground(t.Subtext).Render(label)
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Center,
		button("No", choice == menu.ChoiceNo),
		strings.Repeat(" ", SpaceSM),
		button("Yes", choice == menu.ChoiceYes),
	)

	title := t.Renderer.NewStyle().Foreground(t.Danger).Bold(true).Render("Are you sure you want to exit?")
	sub := t.Renderer.NewStyle().Foreground(t.Subtext).Render("All changes will be lost.")
	content := lipgloss.JoinVertical(lipgloss.Center, title, sub, "", buttons)

	modal := t.boxStyle(true).
		BorderForeground(t.Danger).
		Padding(SpaceXS, SpaceSM).
		Render(content)

	f.view = lipgloss.Place(f.layout.Cols, f.layout.Rows, lipgloss.Center, lipgloss.Center, modal)
}

// box frames lines with a rounded border sized to the terminal, clipping
// overflow and reserving the last inner row for the footer.
func (f *Frame) box(lines []string, footer string, focused bool) string {
	width := f.innerWidth()
	height := f.innerHeight()

	body := height - 1
	if len(lines) > body {
		lines = lines[:max(body, 0)]
	}
	out := make([]string, 0, height)
	for _, l := range lines {
		out = append(out, padRight(l, width))
	}
	for len(out) < body {
		out = append(out, strings.Repeat(" ", width))
	}
	if height > 1 {
		out = append(out, padRight(" "+footer, width))
	}
	return f.theme.boxStyle(focused).Render(strings.Join(out, "\n"))
}

// cursorLine renders text clipped to width cells, drawing the caret at
// rune offset cursor as a reversed cell when show is set.
func (f *Frame) cursorLine(text string, cursor int, show bool, width int) string {
	if width < 1 {
		return ""
	}
	runes := []rune(text)
	cursor = min(max(cursor, 0), len(runes))

	// Keep the caret in view when the text is wider than the field.
	start := 0
	for runewidth.StringWidth(string(runes[start:cursor]))+1 > width && start < cursor {
		start++
	}
	runes = runes[start:]
	cursor -= start

	before := string(runes[:cursor])
	if !show {
		return runewidth.Truncate(string(runes), width, "")
	}

	caret := " "
	after := ""
	if cursor < len(runes) {
		caret = string(runes[cursor])
		after = string(runes[cursor+1:])
	}
	rest := width - runewidth.StringWidth(before) - runewidth.StringWidth(caret)
	after = runewidth.Truncate(after, max(rest, 0), "")

	caretStyle := f.theme.Renderer.NewStyle().Reverse(true)
	return before + caretStyle.Render(caret) + after
}

// padRight pads a possibly styled line to width cells, truncating plain
// overflow.
func padRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w > width {
		return lipgloss.NewStyle().MaxWidth(width).Render(s)
	}
	return s + strings.Repeat(" ", width-w)
}
