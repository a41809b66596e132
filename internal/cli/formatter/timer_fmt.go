package formatter

import (
	"fmt"
	"time"

	"github.com/alexanderramin/chrono/internal/domain"
)

const timerBarWidth = 12

// FormatTimerRow renders one timer line for the interactive list.
func FormatTimerRow(t domain.Timer, selected bool) string {
	cursor := "  "
	if selected {
		cursor = StyleGreen.Render("▸ ")
	}
	name := t.Name
	if t.PastHalfway() {
		name = StyleYellow.Render(name + " ½")
	}
	return fmt.Sprintf("%s%s %s  %s %s  %s",
		cursor,
		StatusIcon(t.Status),
		StatusStyle(t.Status).Render(FormatClock(t.RemainingTime)),
		TimerBar(t, timerBarWidth),
		Dim("/ "+FormatClock(t.Duration)),
		name,
	)
}

// FormatCategoryHeader renders the group header for a category.
func FormatCategoryHeader(category string, timers []domain.Timer, collapsed bool) string {
	indicator := "▾"
	if collapsed {
		indicator = "▸"
	}
	running := 0
	for _, t := range timers {
		if t.Status == domain.TimerRunning {
			running++
		}
	}
	summary := Plural(len(timers), "timer")
	if running > 0 {
		summary += fmt.Sprintf(", %d running", running)
	}
	return fmt.Sprintf("%s %s %s", Dim(indicator), StyleHeader.Render(category), Dim("("+summary+")"))
}

// FormatStatusLine renders a one-line plain status report for headless runs.
func FormatStatusLine(t domain.Timer, at time.Time) string {
	return fmt.Sprintf("%s  %-9s %s  %s %s",
		Dim(at.Format("15:04:05")),
		string(t.Status),
		FormatClock(t.RemainingTime),
		Bold(t.Name),
		Dim("["+t.Category+"]"),
	)
}

// FormatHalfwayAlert renders the notice printed when a timer passes halfway.
func FormatHalfwayAlert(t domain.Timer, at time.Time) string {
	return fmt.Sprintf("%s  %s %s is halfway (%s left)",
		Dim(at.Format("15:04:05")),
		StyleYellow.Render("½"),
		Bold(t.Name),
		FormatClock(t.RemainingTime),
	)
}

// FormatTimerTable renders timers as a table.
func FormatTimerTable(timers []domain.Timer) string {
	if len(timers) == 0 {
		return Dim("No timers.") + "\n"
	}
	rows := make([][]string, 0, len(timers))
	for _, t := range timers {
		halfway := ""
		if t.HalfwayAlert {
			halfway = "yes"
		}
		rows = append(rows, []string{
			t.Name,
			CategoryBadge(t.Category),
			FormatSeconds(t.Duration),
			FormatClock(t.RemainingTime),
			StatusPill(t.Status),
			halfway,
		})
	}
	return RenderTableAligned(
		[]string{"NAME", "CATEGORY", "DURATION", "LEFT", "STATUS", "HALFWAY"},
		rows,
		[]bool{false, false, true, true},
	)
}
