package console

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/core/tui/theme"
)

// Styles used for console output. When disabled every style renders its
// input unchanged, so plain output stays byte-exact.
type Styles struct {
	enabled bool

	Error     lipgloss.Style
	Technical lipgloss.Style
	Success   lipgloss.Style
	Separator lipgloss.Style
	Menu      lipgloss.Style
}

// NewStyles builds styles from the default theme palette, bound to a
// renderer for w.
func NewStyles(w io.Writer, enabled bool) Styles {
	r := lipgloss.NewRenderer(w)
	c := theme.DefaultTheme.Colors
	return Styles{
		enabled:   enabled,
		Error:     r.NewStyle().Bold(true).Foreground(c.Red),
		Technical: r.NewStyle().Foreground(c.MutedText),
		Success:   r.NewStyle().Bold(true).Foreground(c.Green),
		Separator: r.NewStyle().Foreground(c.Border),
		Menu:      r.NewStyle().Bold(true).Foreground(c.Violet),
	}
}

func (s Styles) render(style lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}
	return style.Render(text)
}
