// Package styles provides shared lipgloss v2 styles for the console badge and
// the TUI sidebar.
package styles

import (
	lipgloss "charm.land/lipgloss/v2"
)

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Style exports.
var (
	// Badge rendered next to a sidebar item, or on its own in the console.
	BadgeStyle       lipgloss.Style
	BadgeHiddenStyle lipgloss.Style

	SidebarStyle         lipgloss.Style
	SidebarTitleStyle    lipgloss.Style
	SidebarItemStyle     lipgloss.Style
	SidebarSelectedStyle lipgloss.Style

	StatusStyle      lipgloss.Style
	StatusErrorStyle lipgloss.Style
	HelpStyle        lipgloss.Style

	// Plain text in a single palette color, used by command output.
	TextMutedStyle          lipgloss.Style
	TextSuccessStyle        lipgloss.Style
	TextWarningStyle        lipgloss.Style
	TextErrorStyle          lipgloss.Style
	TextPrimaryBoldStyle    lipgloss.Style
	TextForegroundBoldStyle lipgloss.Style
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	BadgeStyle = lipgloss.NewStyle().
		Background(p.Error).
		Foreground(p.Background).
		Bold(true).
		Padding(0, 1)
	BadgeHiddenStyle = lipgloss.NewStyle().
		Foreground(p.Muted)

	SidebarStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder(), false, true, false, false).
		BorderForeground(p.Surface).
		Padding(1, 2)
	SidebarTitleStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true).
		MarginBottom(1)
	SidebarItemStyle = lipgloss.NewStyle().
		Foreground(p.Foreground)
	SidebarSelectedStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)

	StatusStyle = lipgloss.NewStyle().
		Foreground(p.Muted)
	StatusErrorStyle = lipgloss.NewStyle().
		Foreground(p.Error)
	HelpStyle = lipgloss.NewStyle().
		Foreground(p.Muted).
		MarginTop(1)

	TextMutedStyle = lipgloss.NewStyle().Foreground(p.Muted)
	TextSuccessStyle = lipgloss.NewStyle().Foreground(p.Success)
	TextWarningStyle = lipgloss.NewStyle().Foreground(p.Warning)
	TextErrorStyle = lipgloss.NewStyle().Foreground(p.Error)
	TextPrimaryBoldStyle = lipgloss.NewStyle().Foreground(p.Primary).Bold(true)
	TextForegroundBoldStyle = lipgloss.NewStyle().Foreground(p.Foreground).Bold(true)
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}
