package menu

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// recorder keeps every frame the menus hand to the renderer.
type recorder struct {
	searches []SearchView
	inputs   []InputView
	confirms []Choice
	last     string
}

func (r *recorder) DrawSearchBox(v SearchView) {
	r.searches = append(r.searches, v)
	r.last = "search"
}

func (r *recorder) DrawInputBox(v InputView) {
	r.inputs = append(r.inputs, v)
	r.last = "input"
}

func (r *recorder) DrawExitConfirm(c Choice) {
	r.confirms = append(r.confirms, c)
	r.last = "confirm"
}

func (r *recorder) lastSearch(t *testing.T) SearchView {
	t.Helper()
	if len(r.searches) == 0 {
		t.Fatal("no search box drawn")
	}
	return r.searches[len(r.searches)-1]
}

func press(m interface{ HandleKey(Key) Status }, keys ...Key) Status {
	var st Status
	for _, k := range keys {
		st = m.HandleKey(k)
	}
	return st
}

var (
	up     = Key{Type: KeyUp}
	down   = Key{Type: KeyDown}
	left   = Key{Type: KeyLeft}
	right  = Key{Type: KeyRight}
	home   = Key{Type: KeyHome}
	end    = Key{Type: KeyEnd}
	tab    = Key{Type: KeyTab}
	enter  = Key{Type: KeyEnter}
	esc    = Key{Type: KeyEscape}
	bksp   = Key{Type: KeyBackspace}
	del    = Key{Type: KeyDelete}
	layout = Layout{Rows: 24, Cols: 80}
)

func TestEntryMenu_TypeFilterAndSelect(t *testing.T) {
	rec := &recorder{}
	m := NewEntryMenu("pick", []string{"npm", "yarn", "node"}, "", layout, rec)

	press(m, Rune('n'))
	if diff := cmp.Diff([]string{"npm", "node"}, m.Filtered()); diff != "" {
		t.Errorf("after 'n' (-want +got):\n%s", diff)
	}
	press(m, Rune('p'))
	if diff := cmp.Diff([]string{"npm"}, m.Filtered()); diff != "" {
		t.Errorf("after 'np' (-want +got):\n%s", diff)
	}

	if st := press(m, down); st != Pending {
		t.Fatalf("Down in the filter field should only move focus, got %v", st)
	}
	if m.Focus() != FocusList {
		t.Fatalf("expected list focus after Down, got %v", m.Focus())
	}
	if st := press(m, enter); st != Done {
		t.Fatalf("expected Done, got %v", st)
	}
	if m.Value() != "npm" {
		t.Errorf("expected npm, got %q", m.Value())
	}
}

func TestEntryMenu_DefaultPreselects(t *testing.T) {
	m := NewEntryMenu("pick", []string{"npm", "yarn"}, "yarn", layout, nil)

	if diff := cmp.Diff([]string{"yarn"}, m.Filtered()); diff != "" {
		t.Errorf("filtered (-want +got):\n%s", diff)
	}
	if m.Focus() != FocusList {
		t.Errorf("expected list focus, got %v", m.Focus())
	}
	if m.Selected() != 0 {
		t.Errorf("expected selected 0, got %d", m.Selected())
	}
	if m.Cursor() != SearchFieldStart+4 {
		t.Errorf("expected cursor after the default, got %d", m.Cursor())
	}
	if st := press(m, enter); st != Done || m.Value() != "yarn" {
		t.Errorf("expected (Done, yarn), got (%v, %q)", st, m.Value())
	}
}

func TestEntryMenu_DefaultWithoutMatchStaysInFilter(t *testing.T) {
	m := NewEntryMenu("pick", []string{"npm", "yarn"}, "cargo", layout, nil)

	if m.Focus() != FocusFilter {
		t.Errorf("expected filter focus, got %v", m.Focus())
	}
	if m.Selected() != 0 {
		t.Errorf("expected selected 0, got %d", m.Selected())
	}
	if len(m.Filtered()) != 0 {
		t.Errorf("expected no matches, got %v", m.Filtered())
	}

	// Enter moves to the empty list and a second Enter selects nothing.
	press(m, enter)
	if st := press(m, enter); st != Pending {
		t.Errorf("Enter on an empty list must be a no-op, got %v", st)
	}
	if st := press(m, down); st != Pending || m.Selected() != 0 {
		t.Errorf("Down on an empty list must be a no-op, got (%v, %d)", st, m.Selected())
	}
}

func TestEntryMenu_Empty(t *testing.T) {
	rec := &recorder{}
	m := NewEntryMenu("pick", nil, "", layout, rec)
	if !m.Empty() {
		t.Error("expected Empty for no options")
	}
	if len(rec.searches) != 0 {
		t.Error("constructing a menu must not draw")
	}
}

func TestEntryMenu_UpAtTopReturnsToFilter(t *testing.T) {
	m := NewEntryMenu("pick", []string{"npm", "yarn"}, "", layout, nil)
	press(m, tab)
	if m.Focus() != FocusList {
		t.Fatalf("expected list focus after Tab, got %v", m.Focus())
	}

	if st := press(m, up); st != Pending {
		t.Fatalf("unexpected status %v", st)
	}
	if m.Focus() != FocusFilter || m.Selected() != 0 {
		t.Errorf("expected (filter, 0), got (%v, %d)", m.Focus(), m.Selected())
	}
}

func TestEntryMenu_ListNavigation(t *testing.T) {
	opts := []string{"a", "b", "c"}

	t.Run("Down_Right_j_advance", func(t *testing.T) {
		m := NewEntryMenu("pick", opts, "", layout, nil)
		press(m, tab, down, right)
		if m.Selected() != 2 {
			t.Errorf("expected 2, got %d", m.Selected())
		}
		press(m, Rune('j'))
		if m.Selected() != 2 {
			t.Errorf("expected to stay on last item, got %d", m.Selected())
		}
	})

	t.Run("Up_Left_k_go_back", func(t *testing.T) {
		m := NewEntryMenu("pick", opts, "", layout, nil)
		press(m, tab, Rune('j'), Rune('j'))
		press(m, Rune('k'))
		if m.Selected() != 1 {
			t.Errorf("expected 1, got %d", m.Selected())
		}
		press(m, left)
		if m.Selected() != 0 || m.Focus() != FocusList {
			t.Errorf("expected (0, list), got (%d, %v)", m.Selected(), m.Focus())
		}
	})

	t.Run("Tab_toggles_back", func(t *testing.T) {
		m := NewEntryMenu("pick", opts, "", layout, nil)
		press(m, tab, tab)
		if m.Focus() != FocusFilter {
			t.Errorf("expected filter focus, got %v", m.Focus())
		}
	})

	t.Run("Printable_in_list_is_ignored", func(t *testing.T) {
		m := NewEntryMenu("pick", opts, "", layout, nil)
		press(m, tab, Rune('x'))
		if m.Query() != "" || m.Focus() != FocusList {
			t.Errorf("expected untouched query, got (%q, %v)", m.Query(), m.Focus())
		}
	})
}

func TestEntryMenu_ScrollsWithSelection(t *testing.T) {
	opts := numbered(20, "opt")
	rec := &recorder{}
	m := NewEntryMenu("pick", opts, "", layout, rec)
	press(m, tab)

	// MaxVisible is 8 at 24 rows: the ninth Down scrolls by one.
	for i := 0; i < 8; i++ {
		press(m, down)
	}
	if m.Selected() != 8 || m.Offset() != 1 {
		t.Fatalf("expected (8, 1), got (%d, %d)", m.Selected(), m.Offset())
	}

	v := rec.lastSearch(t)
	if v.Window.Offset != 1 {
		t.Errorf("renderer got offset %d, want 1", v.Window.Offset)
	}
	visible := v.Visible()
	if len(visible) == 0 || visible[0] != "opt01" {
		t.Errorf("expected window to start at opt01, got %v", visible)
	}

	for i := 0; i < 8; i++ {
		press(m, up)
	}
	if m.Selected() != 0 || m.Offset() != 0 {
		t.Errorf("expected (0, 0) after walking back, got (%d, %d)", m.Selected(), m.Offset())
	}
}

func TestEntryMenu_EditsResetSelection(t *testing.T) {
	opts := []string{"GPL-2.0-only", "GPL-2.0-or-later", "GPL-3.0-only", "MIT"}
	m := NewEntryMenu("pick", opts, "GPL", layout, nil)
	press(m, down, down)
	if m.Selected() != 2 {
		t.Fatalf("expected 2, got %d", m.Selected())
	}

	press(m, tab, bksp)
	if m.Query() != "GP" || m.Selected() != 0 || m.Offset() != 0 {
		t.Errorf("backspace: got (%q, %d, %d)", m.Query(), m.Selected(), m.Offset())
	}

	press(m, tab, down, tab, Rune('L'))
	if m.Query() != "GPL" || m.Selected() != 0 {
		t.Errorf("insert: got (%q, %d)", m.Query(), m.Selected())
	}
	if len(m.Filtered()) != 3 {
		t.Errorf("expected 3 GPL matches, got %v", m.Filtered())
	}
}

func TestEntryMenu_CursorEditing(t *testing.T) {
	m := NewEntryMenu("pick", []string{"npm", "node", "yarn"}, "", layout, nil)
	start := SearchFieldStart

	press(m, Runes("nde")...)
	if m.Cursor() != start+3 {
		t.Fatalf("expected cursor %d, got %d", start+3, m.Cursor())
	}

	press(m, left, left, Rune('o'))
	if m.Query() != "node" {
		t.Errorf("expected insertion at cursor to give node, got %q", m.Query())
	}
	if m.Cursor() != start+2 {
		t.Errorf("expected cursor %d, got %d", start+2, m.Cursor())
	}

	press(m, home)
	if m.Cursor() != start {
		t.Errorf("Home: expected %d, got %d", start, m.Cursor())
	}
	press(m, left, bksp)
	if m.Cursor() != start || m.Query() != "node" {
		t.Errorf("cursor must not leave the field: got (%d, %q)", m.Cursor(), m.Query())
	}

	press(m, del)
	if m.Query() != "ode" {
		t.Errorf("Delete at field start: expected ode, got %q", m.Query())
	}
	if len(m.Filtered()) != 0 {
		t.Errorf("expected filtered list to follow the query, got %v", m.Filtered())
	}

	press(m, end)
	if m.Cursor() != start+3 {
		t.Errorf("End: expected %d, got %d", start+3, m.Cursor())
	}
	press(m, right, del)
	if m.Cursor() != start+3 || m.Query() != "ode" {
		t.Errorf("cursor must not pass the end: got (%d, %q)", m.Cursor(), m.Query())
	}
}

func TestEntryMenu_ExitConfirm(t *testing.T) {
	t.Run("Escape_then_Enter_on_No_restores_state", func(t *testing.T) {
		rec := &recorder{}
		m := NewEntryMenu("pick", []string{"npm", "node", "yarn"}, "", layout, rec)
		press(m, Rune('n'), tab, down)
		before := m.View()

		press(m, esc)
		if !m.Confirming() || m.Choice() != ChoiceNo {
			t.Fatalf("expected confirm with No highlighted, got (%v, %v)", m.Confirming(), m.Choice())
		}
		if rec.last != "confirm" {
			t.Errorf("expected the confirm modal to be drawn, got %s", rec.last)
		}

		if st := press(m, enter); st != Pending {
			t.Fatalf("Enter on No must not finish, got %v", st)
		}
		if m.Confirming() {
			t.Error("expected confirm dismissed")
		}
		if diff := cmp.Diff(before, m.View()); diff != "" {
			t.Errorf("state changed across the modal (-before +after):\n%s", diff)
		}
		if rec.last != "search" {
			t.Errorf("expected the search box to be redrawn, got %s", rec.last)
		}
	})

	t.Run("Navigation_moves_highlight_only", func(t *testing.T) {
		m := NewEntryMenu("pick", []string{"a", "b", "c"}, "", layout, nil)
		press(m, tab, esc)
		press(m, down)
		if m.Choice() != ChoiceYes || m.Selected() != 0 {
			t.Errorf("Down: expected (yes, 0), got (%v, %d)", m.Choice(), m.Selected())
		}
		press(m, Rune('k'))
		if m.Choice() != ChoiceNo {
			t.Errorf("k: expected no, got %v", m.Choice())
		}
		press(m, right)
		if m.Choice() != ChoiceYes {
			t.Errorf("Right: expected yes, got %v", m.Choice())
		}
		press(m, left)
		if m.Choice() != ChoiceNo {
			t.Errorf("Left: expected no, got %v", m.Choice())
		}
	})

	t.Run("Yes_aborts", func(t *testing.T) {
		rec := &recorder{}
		m := NewEntryMenu("pick", []string{"a"}, "", layout, rec)
		press(m, esc, Rune('j'))
		frames := len(rec.confirms)
		if st := press(m, enter); st != Aborted {
			t.Fatalf("expected Aborted, got %v", st)
		}
		if m.Value() != "" {
			t.Errorf("aborted menu must not yield a value, got %q", m.Value())
		}
		if len(rec.confirms) != frames {
			t.Error("terminating key must not redraw")
		}
		if st := press(m, enter); st != Aborted {
			t.Errorf("finished menu must keep its status, got %v", st)
		}
	})

	t.Run("q_and_Escape_dismiss_even_on_Yes", func(t *testing.T) {
		for _, k := range []Key{Rune('q'), esc} {
			m := NewEntryMenu("pick", []string{"a"}, "", layout, nil)
			press(m, esc, down, k)
			if m.Confirming() {
				t.Errorf("%v: expected modal dismissed", k)
			}
			if m.Focus() != FocusFilter {
				t.Errorf("%v: expected prior focus restored, got %v", k, m.Focus())
			}
		}
	})

	t.Run("Other_key_on_Yes_is_ignored", func(t *testing.T) {
		m := NewEntryMenu("pick", []string{"a"}, "", layout, nil)
		press(m, esc, down, Rune('x'))
		if !m.Confirming() || m.Choice() != ChoiceYes {
			t.Errorf("expected modal still up on yes, got (%v, %v)", m.Confirming(), m.Choice())
		}
	})

	t.Run("Other_key_on_No_dismisses_without_acting", func(t *testing.T) {
		m := NewEntryMenu("pick", []string{"a", "b"}, "", layout, nil)
		press(m, esc, tab)
		if m.Confirming() || m.Focus() != FocusFilter {
			t.Errorf("expected dismissed with filter focus, got (%v, %v)", m.Confirming(), m.Focus())
		}
		if m.Query() != "" {
			t.Errorf("dismissing key must not be typed, got %q", m.Query())
		}
	})

	t.Run("Reopen_highlights_No", func(t *testing.T) {
		m := NewEntryMenu("pick", []string{"a"}, "", layout, nil)
		press(m, esc, down, Rune('q'), esc)
		if m.Choice() != ChoiceNo {
			t.Errorf("expected No on reopen, got %v", m.Choice())
		}
	})
}

func TestEntryMenu_RenderedValues(t *testing.T) {
	rec := &recorder{}
	m := NewEntryMenu("Choose a package manager", []string{"npm", "yarn", "node"}, "", layout, rec)
	m.Draw()

	v := rec.lastSearch(t)
	if v.Prompt != "Choose a package manager" || v.Query != "" || v.Focus != FocusFilter {
		t.Errorf("unexpected first frame %+v", v)
	}
	if diff := cmp.Diff([]string{"npm", "yarn", "node"}, v.Items); diff != "" {
		t.Errorf("empty query shows all options (-want +got):\n%s", diff)
	}
	if v.Cursor != SearchFieldStart {
		t.Errorf("expected cursor at field start, got %d", v.Cursor)
	}

	press(m, Rune('y'))
	v = rec.lastSearch(t)
	if diff := cmp.Diff([]string{"yarn"}, v.Items); diff != "" {
		t.Errorf("query shows filtered items (-want +got):\n%s", diff)
	}
	if v.Window.Count != 1 || v.Window.Offset != 0 {
		t.Errorf("unexpected window %+v", v.Window)
	}

	m.Resize(Layout{Rows: 10, Cols: 40})
	if len(rec.searches) != 3 {
		t.Errorf("expected Resize to redraw, got %d frames", len(rec.searches))
	}
}
