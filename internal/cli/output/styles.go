package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette colors.
var (
	colorAccent  = lipgloss.Color("#4e3fb4")
	colorSymbol  = lipgloss.Color("#2c58a8")
	colorMuted   = lipgloss.Color("#9585a3")
	colorSuccess = lipgloss.Color("#2ba185")
	colorWarning = lipgloss.Color("#f5b000")
	colorError   = lipgloss.Color("#e03e2f")
)

// Styles holds the lipgloss styles used by text output.
type Styles struct {
	Header1 lipgloss.Style
	Header2 lipgloss.Style
	Bold    lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style

	// Grouping tree
	Value           lipgloss.Style
	Symbol          lipgloss.Style
	Hint            lipgloss.Style
	NonContributing lipgloss.Style
}

// NewStyles builds the styles bound to a lipgloss renderer.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Header1: r.NewStyle().Bold(true).Underline(true),
		Header2: r.NewStyle().Bold(true).Foreground(colorAccent),
		Bold:    r.NewStyle().Bold(true),
		Muted:   r.NewStyle().Foreground(colorMuted),
		Success: r.NewStyle().Foreground(colorSuccess),
		Warning: r.NewStyle().Foreground(colorWarning),
		Error:   r.NewStyle().Foreground(colorError).Bold(true),

		Value:           r.NewStyle().Foreground(colorAccent),
		Symbol:          r.NewStyle().Foreground(colorSymbol).Bold(true),
		Hint:            r.NewStyle().Foreground(colorMuted).Italic(true),
		NonContributing: r.NewStyle().Foreground(colorMuted).Faint(true),
	}
}
