package cmd

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/core/tui/theme"
)

// Common styles used across commands
var (
	successStyle = theme.DefaultTheme.Success
	failStyle    = theme.DefaultTheme.Error
	versionStyle = theme.DefaultTheme.Info
	faintStyle   = theme.DefaultTheme.Muted
)

func (a *app) render(style lipgloss.Style, text string) string {
	if !a.styled {
		return text
	}
	return style.Render(text)
}
