// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// styles holds the lipgloss styles for one output. Colors are dropped
// automatically when the output is not a terminal.
type styles struct {
	summary  lipgloss.Style
	label    lipgloss.Style
	title    lipgloss.Style
	authors  lipgloss.Style
	details  lipgloss.Style
	noData   lipgloss.Style
	errorMsg lipgloss.Style
	loading  lipgloss.Style
	enabled  lipgloss.Style
	disabled lipgloss.Style
	selected lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		summary: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		label: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214")),
		title: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86")),
		authors: r.NewStyle().
			Foreground(lipgloss.Color("33")),
		details: r.NewStyle().
			Foreground(lipgloss.Color("250")).
			Width(detailWidth).
			MarginLeft(4),
		noData: r.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true),
		errorMsg: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")),
		loading: r.NewStyle().
			Foreground(lipgloss.Color("240")),
		enabled: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("32")),
		disabled: r.NewStyle().
			Faint(true),
		selected: r.NewStyle().
			Bold(true).
			Underline(true),
	}
}
