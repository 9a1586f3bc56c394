package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/sprintbudget/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StatusStyle colors a day by its budget status.
func StatusStyle(s domain.Status) lipgloss.Style {
	if s == domain.StatusBad {
		return StyleRed
	}
	return StyleGreen
}

// ReasonIndicator renders the status label of a day, e.g. "● Warning: month cap".
func ReasonIndicator(reason domain.StatusReason, label string) string {
	switch reason {
	case domain.ReasonOK:
		return StyleGreen.Render("● " + label)
	case domain.ReasonMonth, domain.ReasonTotal, domain.ReasonSprint:
		return StyleRed.Render("▲ " + label)
	default:
		return StyleDim.Render("● " + label)
	}
}

// CeilingBadge names the ceiling a breach hit.
func CeilingBadge(kind domain.CeilingKind) string {
	switch kind {
	case domain.CeilingMonth:
		return StyleRed.Render("MONTH CAP")
	case domain.CeilingSprint:
		return StylePurple.Render("SPRINT CAP")
	case domain.CeilingTotal:
		return StyleRed.Render("TOTAL BUDGET")
	default:
		return StyleDim.Render(strings.ToUpper(string(kind)))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
