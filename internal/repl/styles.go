package repl

import "github.com/charmbracelet/lipgloss"

var (
	colorGreen = lipgloss.Color("#10B981")
	colorRed   = lipgloss.Color("#EF4444")
	colorMuted = lipgloss.Color("#6B7280")
	colorToken = lipgloss.Color("#7C3AED")
)

type styles struct {
	banner lipgloss.Style
	muted  lipgloss.Style
	token  lipgloss.Style
	err    lipgloss.Style
}

// newStyles returns plain styles unless color is set
func newStyles(color bool) styles {
	if !color {
		plain := lipgloss.NewStyle()
		return styles{banner: plain, muted: plain, token: plain, err: plain}
	}
	return styles{
		banner: lipgloss.NewStyle().Bold(true).Foreground(colorGreen),
		muted:  lipgloss.NewStyle().Foreground(colorMuted).Italic(true),
		token:  lipgloss.NewStyle().Foreground(colorToken),
		err:    lipgloss.NewStyle().Foreground(colorRed),
	}
}
