// Package display renders the CLI's output with lipgloss: recipe cards,
// the explore overview, the grouped shopping list, preference summaries,
// and the pantry staples reference. Renderers are pure string builders;
// nothing here owns terminal state.
package display

import "github.com/charmbracelet/lipgloss"

// Soft palette shared by every renderer.
var (
	// BannerStyle is the muted slate of the startup banner.
	BannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bbf7d0")).
			Bold(true)

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bae6fd")).
			Bold(true)

	primaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4d4d8"))

	secondaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a"))

	checkedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a")).
			Strikethrough(true)

	badgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fde68a")).
			Bold(true)

	savedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fca5a5"))

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a1a1aa"))
)
