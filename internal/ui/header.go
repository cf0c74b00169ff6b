package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	appTitle    = "Photo Gallery"
	appSubtitle = "Discover stunning images powered by Pexels"
)

// renderHeader renders the two-line title bar with the mode toggle label.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	white := lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff"))

	// The label names the mode the toggle switches to.
	toggle := bg.Render("D", white.Bold(true)) + bg.Sep(" ") +
		bg.Render(ternary(m.darkMode, "Light Mode", "Dark Mode"), white)

	title := bg.Render(appTitle, white.Bold(true))
	gap := m.width - 2 - lipgloss.Width(title) - lipgloss.Width(toggle)
	line1 := title + bg.Spaces(gap) + toggle

	subtitle := appSubtitle
	if m.width < LayoutCompactWidth {
		subtitle = "Powered by Pexels"
	}
	line2 := bg.Render(subtitle, white)

	return styles.Header.Width(m.width).Render(line1) + "\n" +
		styles.Header.Width(m.width).Render(line2)
}

// renderCommandBar renders the key hints for the active route.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd

	switch {
	case m.currentView == ViewDetail:
		commands = []cmd{
			{"esc", "Back to Gallery"},
			{"d", "Download"},
			{"j/k", "Scroll"},
			{"D", "Theme"},
			{"?", "More"},
		}
	case m.inputFocused:
		commands = []cmd{
			{"type", "Search"},
			{"esc", "Browse"},
			{"ctrl+c", "Quit"},
		}
	default:
		commands = []cmd{
			{"/", "Search"},
			{"←↑↓→", "Select"},
			{"enter", "Details"},
			{"[ ]", "Columns"},
			{"D", "Theme"},
			{"?", "More"},
		}
	}

	white := lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff"))
	colon := bg.Sep(":")
	sep := bg.Spaces(2)

	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, white.Bold(true))+colon+bg.Render(c.desc, white))
	}
	if m.notice != "" && m.currentView == ViewGallery {
		segments = append(segments, bg.Render(m.notice, styles.WarningText))
	}

	return styles.Header.Width(m.width).Render(strings.Join(segments, sep))
}
