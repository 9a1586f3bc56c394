package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/sprintbudget/internal/projection"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderGauge renders planned usage against a cap, e.g.
// [████████░░] 80% 240.0h / 300.0h. The bar turns yellow from 80% and red
// once the cap is exceeded.
func RenderGauge(g projection.Gauge, width int) string {
	width = max(width, 2)
	pct := g.Pct()

	filled := min(int(pct/100*float64(width)), width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	switch {
	case g.Over():
		style = StyleRed
	case pct >= 80:
		style = StyleYellow
	}

	return fmt.Sprintf("[%s] %3.0f%% %s / %s", style.Render(bar), pct, Hours(g.Planned), Hours(g.Cap))
}
