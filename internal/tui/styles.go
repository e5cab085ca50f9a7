package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorInfo      = lipgloss.Color("#3B82F6")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")
)

// Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			MarginBottom(1)

	LabelStyle = lipgloss.NewStyle().
			Width(22).
			Foreground(colorMuted)

	FocusedLabelStyle = lipgloss.NewStyle().
				Width(22).
				Foreground(colorPrimary).
				Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(colorSecondary).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(colorInfo)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	StatusStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)

	ResultBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1).
			MarginTop(1)

	HelpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			MarginTop(1)
)
