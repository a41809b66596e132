package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/chrono/internal/domain"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderBar renders a bare bar of width cells filled to pct in style color.
func RenderBar(pct float64, width int, dim bool) string {
	pct = min(max(pct, 0), 1)
	width = max(width, 2)

	filled := min(int(pct*float64(width)), width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
	if dim {
		return StyleDim.Render(bar)
	}
	return StyleGreen.Render(bar)
}

// RenderProgress renders a bar like [████░░░░] 45%.
func RenderProgress(pct float64, width int) string {
	pct = min(max(pct, 0), 1)
	return fmt.Sprintf("[%s] %3.0f%%", RenderBar(pct, width, false), pct*100)
}

// TimerBar renders elapsed progress for a timer. Past the halfway mark of a
// timer with the halfway alert the bar turns yellow; idle timers are dimmed.
func TimerBar(t domain.Timer, width int) string {
	switch {
	case t.Status == domain.TimerIdle:
		return RenderBar(t.Progress(), width, true)
	case t.PastHalfway():
		pct := min(max(t.Progress(), 0), 1)
		width = max(width, 2)
		filled := min(int(pct*float64(width)), width)
		return StyleYellow.Render(strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled))
	default:
		return RenderBar(t.Progress(), width, false)
	}
}
