package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/chrono/internal/domain"
)

// FormatHistoryTable renders completed timers newest first, with times in loc.
func FormatHistoryTable(entries []domain.HistoryEntry, loc *time.Location) string {
	if len(entries) == 0 {
		return Dim("No completed timers yet.") + "\n"
	}
	if loc == nil {
		loc = time.Local
	}
	rows := make([][]string, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		rows = append(rows, []string{
			e.CompletedAt.In(loc).Format("Jan 2 15:04:05"),
			e.Name,
			CategoryBadge(e.Category),
			FormatSeconds(e.Duration),
		})
	}
	return RenderTableAligned(
		[]string{"COMPLETED", "NAME", "CATEGORY", "DURATION"},
		rows,
		[]bool{false, false, false, true},
	)
}

// FormatCategoryTotals renders archive aggregates per category.
func FormatCategoryTotals(totals []domain.CategoryTotal) string {
	if len(totals) == 0 {
		return Dim("Archive is empty.") + "\n"
	}
	rows := make([][]string, 0, len(totals))
	for _, t := range totals {
		rows = append(rows, []string{
			CategoryBadge(t.Category),
			strconv.Itoa(t.Completions),
			FormatSeconds(t.TotalSeconds),
		})
	}
	return RenderTableAligned([]string{"CATEGORY", "COMPLETIONS", "TOTAL"}, rows, []bool{false, true, true})
}

// FormatExportRuns renders archive export runs oldest first.
func FormatExportRuns(runs []*domain.ExportRun, loc *time.Location) string {
	if len(runs) == 0 {
		return Dim("No exports archived.") + "\n"
	}
	if loc == nil {
		loc = time.Local
	}
	rows := make([][]string, 0, len(runs))
	for _, r := range runs {
		rows = append(rows, []string{
			TruncID(r.ID),
			r.ExportedAt.In(loc).Format("2006-01-02 15:04"),
			strconv.Itoa(r.Total),
			strconv.Itoa(r.Inserted),
			Dim(r.Source),
		})
	}
	return RenderTableAligned([]string{"RUN", "EXPORTED", "TOTAL", "NEW", "SOURCE"}, rows, []bool{false, false, true, true})
}

// FormatExportSummary reports where history went.
func FormatExportSummary(path string, entries int, archived *domain.ExportRun) string {
	var lines []string
	if path != "" {
		lines = append(lines, Success(fmt.Sprintf("Exported %s to %s", Plural(entries, "entry"), Bold(path))))
	}
	if archived != nil {
		lines = append(lines, Success(fmt.Sprintf("Archived %d new of %d", archived.Inserted, archived.Total)))
	}
	return strings.Join(lines, "\n")
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}
