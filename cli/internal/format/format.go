// ABOUTME: Shared lipgloss styles and table rendering for CLI output
// ABOUTME: Defines colors and text styles used across commands

package format

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Colors
	Primary = lipgloss.Color("#7C3AED") // Purple
	Green   = lipgloss.Color("#10B981")
	Amber   = lipgloss.Color("#F59E0B")
	Muted   = lipgloss.Color("#6B7280")

	// Base styles
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(Muted)

	StatusOK = lipgloss.NewStyle().
			Foreground(Green).
			Bold(true)

	StatusWarning = lipgloss.NewStyle().
			Foreground(Amber).
			Bold(true)
)

// Table renders rows as fixed-width columns with a styled header row.
func Table(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder
	b.WriteString(Header.Render(renderRow(headers, widths)))
	b.WriteString("\n")
	for _, row := range rows {
		b.WriteString(renderRow(row, widths))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderRow(cells []string, widths []int) string {
	padded := make([]string, len(cells))
	for i, cell := range cells {
		padded[i] = fmt.Sprintf("%-*s", widths[i], cell)
	}
	return strings.TrimRight(strings.Join(padded, "  "), " ")
}

// USD formats a dollar amount with thousands separators.
func USD(v float64) string {
	s := fmt.Sprintf("%.0f", v)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := "$" + strings.Join(parts, ",")
	if neg {
		out = "-" + out
	}
	return out
}
