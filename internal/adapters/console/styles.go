package console

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/freeze/internal/core/domain"
	"go.trai.ch/freeze/internal/ui/style"
)

// newStyles builds the message styles for a renderer bound to the console output.
func newStyles(r *lipgloss.Renderer) map[domain.MessageLevel]lipgloss.Style {
	return map[domain.MessageLevel]lipgloss.Style{
		domain.MessageInfo:    r.NewStyle().Foreground(style.Slate),
		domain.MessageSuccess: r.NewStyle().Foreground(style.Green).Bold(true),
		domain.MessageWarning: r.NewStyle().Foreground(style.Yellow),
		domain.MessageFailure: r.NewStyle().Foreground(style.Red).Bold(true),
	}
}
