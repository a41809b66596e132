package formatter

import (
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/chrono/internal/domain"
	"github.com/alexanderramin/chrono/internal/testutil"
	"github.com/stretchr/testify/assert"
)

// ansiPattern matches ANSI escape sequences.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "00:00"},
		{5, "00:05"},
		{65, "01:05"},
		{3599, "59:59"},
		{3600, "1:00:00"},
		{3725, "1:02:05"},
		{-4, "00:00"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatClock(tt.seconds))
		})
	}
}

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "0s"},
		{45, "45s"},
		{180, "3m"},
		{3725, "1h 2m 5s"},
		{7200, "2h"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatSeconds(tt.seconds))
		})
	}
}

func TestPlural(t *testing.T) {
	assert.Equal(t, "1 timer", Plural(1, "timer"))
	assert.Equal(t, "0 timers", Plural(0, "timer"))
	assert.Equal(t, "2 entries", Plural(2, "entry"))
}

func TestStatusPill(t *testing.T) {
	assert.Equal(t, "○ Idle", stripANSI(StatusPill(domain.TimerIdle)))
	assert.Equal(t, "▶ Running", stripANSI(StatusPill(domain.TimerRunning)))
	assert.Equal(t, "⏸ Paused", stripANSI(StatusPill(domain.TimerPaused)))
	assert.Equal(t, "✔ Completed", stripANSI(StatusPill(domain.TimerCompleted)))
}

func TestRenderTableAligned(t *testing.T) {
	out := stripANSI(RenderTableAligned(
		[]string{"NAME", "SECS"},
		[][]string{{"Tea", "180"}, {"Eggs", "7"}},
		[]bool{false, true},
	))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Equal(t, []string{
		"NAME  SECS",
		"────  ────",
		"Tea    180",
		"Eggs     7",
	}, lines)
	assert.Empty(t, RenderTable(nil, nil))
}

func TestFormatTimerRow(t *testing.T) {
	tm := testutil.NewTestTimer("Tea", testutil.WithDuration(180), testutil.WithStatus(domain.TimerRunning), testutil.WithRemaining(65))
	row := stripANSI(FormatTimerRow(tm, true))
	assert.True(t, strings.HasPrefix(row, "▸ ▶ 01:05"), row)
	assert.Contains(t, row, "/ 03:00")
	assert.Contains(t, row, "Tea")
	assert.NotContains(t, row, "½")

	alerted := testutil.NewTestTimer("Eggs", testutil.WithDuration(10), testutil.WithHalfwayAlert(),
		testutil.WithStatus(domain.TimerRunning), testutil.WithRemaining(5))
	assert.Contains(t, stripANSI(FormatTimerRow(alerted, false)), "Eggs ½")
}

func TestFormatCategoryHeader(t *testing.T) {
	timers := []domain.Timer{
		testutil.NewTestTimer("A", testutil.WithStatus(domain.TimerRunning), testutil.WithRemaining(10)),
		testutil.NewTestTimer("B"),
	}
	assert.Equal(t, "▾ Workout (2 timers, 1 running)", stripANSI(FormatCategoryHeader("Workout", timers, false)))
	assert.True(t, strings.HasPrefix(stripANSI(FormatCategoryHeader("Workout", timers[1:], true)), "▸ Workout (1 timer)"))
}

func TestFormatHistoryTable_NewestFirst(t *testing.T) {
	entries := []domain.HistoryEntry{
		testutil.NewTestHistoryEntry("t1", "Tea", "Kitchen", 180, time.Minute),
		testutil.NewTestHistoryEntry("t2", "Plank", "Workout", 60, 2*time.Minute),
	}
	out := stripANSI(FormatHistoryTable(entries, time.UTC))
	assert.Less(t, strings.Index(out, "Plank"), strings.Index(out, "Tea"))
	assert.Contains(t, out, "Jun 15 10:01:00")
	assert.Contains(t, out, "3m")

	assert.Contains(t, stripANSI(FormatHistoryTable(nil, time.UTC)), "No completed timers")
}

func TestFormatCategoryTotals(t *testing.T) {
	out := stripANSI(FormatCategoryTotals([]domain.CategoryTotal{{Category: "Kitchen", Completions: 2, TotalSeconds: 600}}))
	assert.Contains(t, out, "Kitchen")
	assert.Contains(t, out, "10m")
	assert.Contains(t, stripANSI(FormatCategoryTotals(nil)), "empty")
}

func TestFormatExportSummary(t *testing.T) {
	out := stripANSI(FormatExportSummary("/tmp/timer-history.json", 2, &domain.ExportRun{Total: 2, Inserted: 1}))
	assert.Contains(t, out, "Exported 2 entries to /tmp/timer-history.json")
	assert.Contains(t, out, "Archived 1 new of 2")
	assert.NotContains(t, stripANSI(FormatExportSummary("x", 1, nil)), "Archived")
}

func TestError(t *testing.T) {
	assert.Equal(t, "Error: boom", stripANSI(Error(errors.New("boom"))))
}
