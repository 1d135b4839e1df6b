package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ══════════════════════════════════════════════════════════════════════════════
// DESIGN TOKENS
// ══════════════════════════════════════════════════════════════════════════════

// Spacing constants (in cells)
const (
	SpaceXS = 1
	SpaceSM = 2
	SpaceMD = 3
)

// ══════════════════════════════════════════════════════════════════════════════
// COLOR PALETTE - Dracula-inspired
// ══════════════════════════════════════════════════════════════════════════════

var (
	ColorBgHighlight = lipgloss.Color("#44475A")
	ColorText        = lipgloss.Color("#F8F8F2")
	ColorSubtext     = lipgloss.Color("#BFBFBF")
	ColorMuted       = lipgloss.Color("#6272A4")

	ColorPrimary = lipgloss.Color("#BD93F9")
	ColorInfo    = lipgloss.Color("#8BE9FD")
	ColorSuccess = lipgloss.Color("#50FA7B")
	ColorWarning = lipgloss.Color("#FFB86C")
	ColorDanger  = lipgloss.Color("#FF5555")
	ColorAccent  = lipgloss.Color("#FF79C6")
)

// Theme bundles the adaptive colors every frame is drawn with. Styles are
// created from Renderer so output matches the terminal the program runs in.
type Theme struct {
	Renderer *lipgloss.Renderer

	Base      lipgloss.Style
	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor
	Subtext   lipgloss.AdaptiveColor
	Border    lipgloss.AdaptiveColor
	Highlight lipgloss.AdaptiveColor
	Danger    lipgloss.AdaptiveColor
	Success   lipgloss.AdaptiveColor
}

// DefaultTheme returns the palette bound to r, or to the default renderer
// when r is nil.
func DefaultTheme(r *lipgloss.Renderer) Theme {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return Theme{
		Renderer:  r,
		Base:      r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#282A36", Dark: string(ColorText)}),
		Primary:   lipgloss.AdaptiveColor{Light: "#7D56C1", Dark: string(ColorPrimary)},
		Secondary: lipgloss.AdaptiveColor{Light: "#3C4A7A", Dark: string(ColorMuted)},
		Subtext:   lipgloss.AdaptiveColor{Light: "#666666", Dark: string(ColorSubtext)},
		Border:    lipgloss.AdaptiveColor{Light: "#BBBBBB", Dark: string(ColorBgHighlight)},
		Highlight: lipgloss.AdaptiveColor{Light: "#006D8F", Dark: string(ColorInfo)},
		Danger:    lipgloss.AdaptiveColor{Light: "#C0392B", Dark: string(ColorDanger)},
		Success:   lipgloss.AdaptiveColor{Light: "#2E8B57", Dark: string(ColorSuccess)},
	}
}

// ══════════════════════════════════════════════════════════════════════════════
// PANEL STYLES
// ══════════════════════════════════════════════════════════════════════════════

// boxStyle is the rounded border shared by the search box, input box and
// confirmation modal. The border is one cell on every side.
func (t Theme) boxStyle(focused bool) lipgloss.Style {
	border := t.Border
	if focused {
		border = t.Primary
	}
	return t.Renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border)
}

// RenderDivider renders a horizontal divider line
func (t Theme) RenderDivider(width int) string {
	if width <= 0 {
		return ""
	}
	return t.Renderer.NewStyle().
		Foreground(t.Border).
		Render(strings.Repeat("─", width))
}
