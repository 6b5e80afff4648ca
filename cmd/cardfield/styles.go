package main

import (
	"github.com/alovak/cardfield/validation"
	"github.com/charmbracelet/lipgloss"
)

const (
	colorSubtle    = lipgloss.Color("240")
	colorHighlight = lipgloss.Color("81")
	colorSpecial   = lipgloss.Color("208")
	colorError     = lipgloss.Color("196")
	colorSuccess   = lipgloss.Color("40")
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(colorHighlight).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorSubtle).
			Width(14)

	valueStyle = lipgloss.NewStyle().Foreground(colorHighlight)

	validStyle      = lipgloss.NewStyle().Foreground(colorSuccess)
	incompleteStyle = lipgloss.NewStyle().Foreground(colorSpecial)
	invalidStyle    = lipgloss.NewStyle().Foreground(colorError).Bold(true)
)

// stateView renders a validation state in its traffic light color.
func stateView(s validation.State) string {
	switch s {
	case validation.Valid:
		return validStyle.Render(s.String())
	case validation.Incomplete:
		return incompleteStyle.Render(s.String())
	default:
		return invalidStyle.Render(s.String())
	}
}

// row renders one "label  value" report line.
func row(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), value)
}
