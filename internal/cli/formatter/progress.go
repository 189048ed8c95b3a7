package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a bar like [████░░░░]  67% for a percentage that may
// exceed 100. The bar saturates at full; the label does not.
func RenderProgress(pct int, width int) string {
	return fmt.Sprintf("[%s] %3d%%", RenderCompactBar(float64(pct)/100, width, false), pct)
}

// RenderCompactBar renders only the blocks. Colour follows the fill: green
// from two thirds, yellow from one third, red below.
func RenderCompactBar(frac float64, width int, dim bool) string {
	frac = min(max(frac, 0), 1)
	width = max(width, 2)

	filled := min(int(frac*float64(width)+0.5), width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	switch {
	case dim:
		return StyleDim.Render(bar)
	case frac < 0.33:
		return StyleRed.Render(bar)
	case frac < 0.66:
		return StyleYellow.Render(bar)
	default:
		return StyleGreen.Render(bar)
	}
}
