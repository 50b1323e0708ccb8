package dialog

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles shared by Console and Modal.
type Styles struct {
	Prompt  lipgloss.Style
	Hint    lipgloss.Style
	Message lipgloss.Style
	Frame   lipgloss.Style

	set bool
}

// DefaultStyles returns the suite look: cyan bold prompts and gray hints.
func DefaultStyles() Styles {
	return NewStyles("cyan", "240")
}

// NewStyles builds Styles from an accent color (prompts, frame border) and a
// hint color. Colors are anything lipgloss.Color accepts.
func NewStyles(accent, hint string) Styles {
	return Styles{
		Prompt:  lipgloss.NewStyle().Foreground(lipgloss.Color(accent)).Bold(true),
		Hint:    lipgloss.NewStyle().Foreground(lipgloss.Color(hint)),
		Message: lipgloss.NewStyle().Bold(true),
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(accent)).
			Padding(1, 2),
		set: true,
	}
}

func (s Styles) isZero() bool { return !s.set }
