package formatter

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/alexanderramin/sprintbudget/internal/dates"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// Hours formats an effort amount with one decimal, e.g. "5.3h". An
// unbounded amount renders as "∞".
func Hours(h float64) string {
	if math.IsInf(h, 1) {
		return "∞"
	}
	return fmt.Sprintf("%.1fh", roundTenth(h))
}

// Remaining formats a remainder and colors it red once it is negative.
func Remaining(h float64) string {
	if math.IsInf(h, 1) {
		return Dim("--")
	}
	text := Hours(h)
	if h < 0 {
		return StyleRed.Render(text)
	}
	return StyleFg.Render(text)
}

// roundTenth avoids printing "-0.0h" for tiny negative float drift.
func roundTenth(h float64) float64 {
	r := math.Round(h*10) / 10
	if r == 0 {
		return 0
	}
	return r
}

// ISODate renders a date as YYYY-MM-DD, or "--" for the zero time.
func ISODate(t time.Time) string {
	if t.IsZero() {
		return "--"
	}
	return dates.ToISO(t)
}

// ShortDate renders a date as "Tue 24 Mar".
func ShortDate(t time.Time) string {
	return t.Format("Mon 2 Jan")
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return Dim(id)
}
