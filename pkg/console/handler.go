// Package console renders log records the way ulpm talks to its user:
// one line per record, prefixed with the program name and a coloured level.
package console

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/toni500git/ulpm/pkg/ui"
)

// Handler implements slog.Handler for terminal output.
type Handler struct {
	mu    *sync.Mutex
	w     io.Writer
	level slog.Leveler
	r     *lipgloss.Renderer

	prefix string // program name
	pre    []byte // attrs from WithAttrs, already formatted
	groups []string
}

// Options configures a Handler.
type Options struct {
	// Level is the minimum level written; defaults to Info.
	Level slog.Leveler
	// Prefix is printed before the level, defaults to "ulpm".
	Prefix string
	// Renderer decides whether colours are emitted; defaults to one bound
	// to w.
	Renderer *lipgloss.Renderer
}

// NewHandler returns a handler writing to w.
func NewHandler(w io.Writer, opts *Options) *Handler {
	if opts == nil {
		opts = &Options{}
	}
	h := &Handler{
		mu:     &sync.Mutex{},
		w:      w,
		level:  opts.Level,
		r:      opts.Renderer,
		prefix: opts.Prefix,
	}
	if h.level == nil {
		h.level = slog.LevelInfo
	}
	if h.r == nil {
		h.r = lipgloss.NewRenderer(w)
	}
	if h.prefix == "" {
		h.prefix = "ulpm"
	}
	return h
}

// New is shorthand for a logger over NewHandler.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(NewHandler(w, &Options{Level: level}))
}

// Enabled implements slog.Handler.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle implements slog.Handler.
func (h *Handler) Handle(_ context.Context, rec slog.Record) error {
	var buf bytes.Buffer

	if rec.Level < slog.LevelInfo {
		buf.WriteString(h.r.NewStyle().Foreground(ui.ColorAccent).Render("[DEBUG]:"))
	} else {
		buf.WriteString(h.r.NewStyle().Bold(true).Render(h.prefix + ":"))
		buf.WriteByte(' ')
		buf.WriteString(h.levelLabel(rec.Level))
	}
	buf.WriteByte(' ')
	buf.WriteString(rec.Message)

	buf.Write(h.pre)
	rec.Attrs(func(a slog.Attr) bool {
		writeAttr(&buf, h.groups, a)
		return true
	})
	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.w.Write(buf.Bytes())
	return err
}

func (h *Handler) levelLabel(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return h.r.NewStyle().Foreground(ui.ColorDanger).Bold(true).Render("ERROR:")
	case level >= slog.LevelWarn:
		return h.r.NewStyle().Foreground(ui.ColorWarning).Bold(true).Render("WARNING:")
	default:
		return h.r.NewStyle().Foreground(ui.ColorInfo).Bold(true).Render("INFO:")
	}
}

func writeAttr(buf *bytes.Buffer, groups []string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		sub := groups
		if a.Key != "" {
			sub = append(append([]string(nil), groups...), a.Key)
		}
		for _, ga := range a.Value.Group() {
			writeAttr(buf, sub, ga)
		}
		return
	}

	buf.WriteByte(' ')
	for _, g := range groups {
		buf.WriteString(g)
		buf.WriteByte('.')
	}
	buf.WriteString(a.Key)
	buf.WriteByte('=')
	v := a.Value.String()
	if v == "" || strings.ContainsAny(v, " \t\"=") {
		v = `"` + strings.ReplaceAll(v, `"`, `\"`) + `"`
	}
	buf.WriteString(v)
}

// WithAttrs implements slog.Handler.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	h2 := *h
	buf := bytes.NewBuffer(append([]byte(nil), h.pre...))
	for _, a := range attrs {
		writeAttr(buf, h.groups, a)
	}
	h2.pre = buf.Bytes()
	return &h2
}

// WithGroup implements slog.Handler. Attributes added before the group
// keep their unqualified keys.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := *h
	h2.groups = append(append([]string(nil), h.groups...), name)
	return &h2
}
