package ui

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/toni500git/ulpm/pkg/menu"
)

// ErrAborted is returned after the user confirmed the destructive exit.
// With the default exit hook the process has already terminated by then.
var ErrAborted = errors.New("aborted by user")

// Runner shows menus on a terminal, one at a time.
type Runner struct {
	In  io.Reader
	Out io.Writer

	// Exit terminates the process after a confirmed abort.
	Exit func(code int)

	logger *slog.Logger
	theme  Theme
	keys   KeyMap
	opts   []tea.ProgramOption
}

// NewRunner returns a runner bound to stdin/stdout.
func NewRunner(logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		In:     os.Stdin,
		Out:    os.Stdout,
		Exit:   os.Exit,
		logger: logger,
		theme:  DefaultTheme(nil),
		keys:   DefaultKeyMap(),
	}
}

// WithProgramOptions appends options passed to every bubbletea program.
func (r *Runner) WithProgramOptions(opts ...tea.ProgramOption) *Runner {
	r.opts = append(r.opts, opts...)
	return r
}

// Interactive reports whether both ends of the runner are terminals.
func (r *Runner) Interactive() bool {
	return isTerminal(r.In) && isTerminal(r.Out)
}

// Layout returns the current terminal size, or the 24x80 default when the
// output is not a terminal.
func (r *Runner) Layout() menu.Layout {
	if f, ok := r.Out.(*os.File); ok {
		if cols, rows, err := term.GetSize(int(f.Fd())); err == nil && rows > 0 && cols > 0 {
			return menu.Layout{Rows: rows, Cols: cols}
		}
	}
	return menu.DefaultLayout()
}

// Entry shows a filterable selection list and returns the chosen option.
// An empty options list returns "" without reading any key.
func (r *Runner) Entry(prompt string, options []string, def string) (string, error) {
	l := r.Layout()
	frame := NewFrame(r.theme, r.keys, l)
	m := menu.NewEntryMenu(prompt, options, def, l, frame)
	if m.Empty() {
		return "", nil
	}
	r.logger.Debug("entry menu", "prompt", prompt, "options", len(options), "default", def)

	m.Draw()
	st, err := r.run(NewMenuModel(m, frame, r.keys))
	if err != nil {
		return "", err
	}
	return r.finish(st, m.Value())
}

// Input shows a single-line text field pre-filled with def.
func (r *Runner) Input(prompt, def string) (string, error) {
	l := r.Layout()
	frame := NewFrame(r.theme, r.keys, l)
	m := menu.NewInputMenu(prompt, def, frame)
	r.logger.Debug("input menu", "prompt", prompt, "default", def)

	m.Draw()
	st, err := r.run(NewMenuModel(m, frame, r.keys))
	if err != nil {
		return "", err
	}
	return r.finish(st, m.Value())
}

// Confirm asks a yes/no question. Interrupting the form counts as "no".
func (r *Runner) Confirm(title string, def bool) (bool, error) {
	answer := def
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(title).
			Affirmative("Yes").
			Negative("No").
			Value(&answer),
	)).
		WithTheme(huh.ThemeDracula()).
		WithInput(r.In).
		WithOutput(r.Out)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, fmt.Errorf("confirm %q: %w", title, err)
	}
	return answer, nil
}

func (r *Runner) run(m MenuModel) (menu.Status, error) {
	opts := append([]tea.ProgramOption{
		tea.WithInput(r.In),
		tea.WithOutput(r.Out),
		tea.WithAltScreen(),
	}, r.opts...)

	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		return menu.Pending, fmt.Errorf("running menu: %w", err)
	}
	fm, ok := final.(MenuModel)
	if !ok {
		return menu.Pending, fmt.Errorf("running menu: unexpected model %T", final)
	}
	return fm.Status(), nil
}

// finish maps a menu outcome to the caller's result. A confirmed abort
// logs a warning and terminates through Exit.
func (r *Runner) finish(st menu.Status, value string) (string, error) {
	switch st {
	case menu.Done:
		return value, nil
	case menu.Aborted:
		r.logger.Warn("Bailing out. All changes are lost")
		r.Exit(1)
		return "", ErrAborted
	default:
		return "", fmt.Errorf("menu ended while %s", st)
	}
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
