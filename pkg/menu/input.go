package menu

import "slices"

// InputMenu is a single-line free text field.
type InputMenu struct {
	prompt string
	text   []rune
	start  int // column where text begins
	cursor int // absolute column

	confirm exitConfirm
	render  Renderer

	status Status
}

// NewInputMenu builds a field pre-filled with def, caret at the end.
func NewInputMenu(prompt, def string, r Renderer) *InputMenu {
	if r == nil {
		r = NopRenderer{}
	}
	m := &InputMenu{
		prompt: prompt,
		text:   []rune(def),
		start:  len([]rune(prompt)) + 1,
		render: r,
	}
	m.cursor = m.start + len(m.text)
	return m
}

func (m *InputMenu) Text() string     { return string(m.text) }
func (m *InputMenu) Cursor() int      { return m.cursor }
func (m *InputMenu) FieldStart() int  { return m.start }
func (m *InputMenu) Confirming() bool { return m.confirm.active }
func (m *InputMenu) Choice() Choice   { return m.confirm.choice }
func (m *InputMenu) Status() Status   { return m.status }

// Value is the entered text once Status is Done.
func (m *InputMenu) Value() string { return string(m.text) }

// HandleKey applies one key and redraws unless the menu finished.
func (m *InputMenu) HandleKey(k Key) Status {
	if m.status != Pending {
		return m.status
	}

	if m.confirm.active {
		m.status = m.confirm.handle(k)
	} else {
		m.edit(k)
	}

	if m.status == Pending {
		m.Draw()
	}
	return m.status
}

func (m *InputMenu) edit(k Key) {
	end := m.start + len(m.text)

	switch k.Type {
	case KeyEnter:
		m.status = Done
	case KeyEscape:
		m.confirm.open()
	case KeyRune:
		m.text = slices.Insert(m.text, m.cursor-m.start, k.Rune)
		m.cursor++
	case KeyBackspace:
		if m.cursor > m.start {
			m.cursor--
			m.text = slices.Delete(m.text, m.cursor-m.start, m.cursor-m.start+1)
		}
	case KeyDelete:
		if m.cursor < end {
			m.text = slices.Delete(m.text, m.cursor-m.start, m.cursor-m.start+1)
		}
	case KeyLeft:
		if m.cursor > m.start {
			m.cursor--
		}
	case KeyRight:
		if m.cursor < end {
			m.cursor++
		}
	case KeyHome:
		m.cursor = m.start
	case KeyEnd:
		m.cursor = end
	}
}

// View returns the values the next frame is drawn from.
func (m *InputMenu) View() InputView {
	return InputView{
		Prompt: m.prompt,
		Text:   string(m.text),
		Cursor: m.cursor - m.start,
	}
}

// Draw hands the current state to the renderer.
func (m *InputMenu) Draw() {
	if m.confirm.active {
		m.render.DrawExitConfirm(m.confirm.choice)
		return
	}
	m.render.DrawInputBox(m.View())
}
