package main

import "github.com/charmbracelet/lipgloss"

var (
	colorPass = lipgloss.Color("#10b981") // green-500
	colorFail = lipgloss.Color("#ef4444") // red-500
	colorDim  = lipgloss.Color("#6b7280") // gray-500
)

// styles holds the lipgloss styles for check output.
type styles struct {
	Pass lipgloss.Style
	Fail lipgloss.Style
	Dim  lipgloss.Style
	Bold lipgloss.Style

	SymbolPass string
	SymbolFail string
}

func defaultStyles() *styles {
	return &styles{
		Pass: lipgloss.NewStyle().Foreground(colorPass).Bold(true),
		Fail: lipgloss.NewStyle().Foreground(colorFail).Bold(true),
		Dim:  lipgloss.NewStyle().Foreground(colorDim),
		Bold: lipgloss.NewStyle().Bold(true),

		SymbolPass: "✓",
		SymbolFail: "✗",
	}
}
