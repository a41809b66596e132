package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/chrono/internal/cli/formatter"
	"github.com/alexanderramin/chrono/internal/domain"
	"github.com/alexanderramin/chrono/internal/preset"
	"github.com/alexanderramin/chrono/internal/store"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// timerRow is one visible line of the grouped list: a category header or
// a timer inside an expanded category.
type timerRow struct {
	isHeader bool
	category string
	timer    domain.Timer
}

// timerListView shows every timer grouped by category.
type timerListView struct {
	state  *SharedState
	cursor int
}

func newTimerListView(state *SharedState) *timerListView {
	return &timerListView{state: state}
}

func (v *timerListView) ID() ViewID    { return ViewTimers }
func (v *timerListView) Title() string { return "Timers" }

func (v *timerListView) ShortHelp() []key.Binding {
	return []key.Binding{
		timerKeys.Toggle,
		timerKeys.Add,
		timerKeys.Start,
		timerKeys.Pause,
		timerKeys.Reset,
		timerKeys.StartCategory,
		timerKeys.History,
	}
}

// FullHelp groups every binding for the expanded help view.
func (v *timerListView) FullHelp() [][]key.Binding {
	k := timerKeys
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle, k.Collapse},
		{k.Add, k.Start, k.Pause, k.Reset, k.Complete, k.Remove},
		{k.StartCategory, k.PauseCategory, k.ResetCategory},
		{k.History, k.Export, k.SavePreset},
	}
}

func (v *timerListView) Init() tea.Cmd { return nil }

// rows flattens the snapshot into visible rows, categories in first
// appearance order.
func (v *timerListView) rows() []timerRow {
	snap := v.state.Snapshot
	var rows []timerRow
	for _, cat := range snap.Categories() {
		rows = append(rows, timerRow{isHeader: true, category: cat})
		if v.state.Collapsed[cat] {
			continue
		}
		for _, t := range snap.TimersInCategory(cat) {
			rows = append(rows, timerRow{category: cat, timer: t})
		}
	}
	return rows
}

// selected returns the row under the cursor, clamping the cursor first.
func (v *timerListView) selected() (timerRow, bool) {
	rows := v.rows()
	if len(rows) == 0 {
		v.cursor = 0
		return timerRow{}, false
	}
	v.cursor = min(max(v.cursor, 0), len(rows)-1)
	return rows[v.cursor], true
}

func (v *timerListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	rows := v.rows()
	switch {
	case key.Matches(keyMsg, timerKeys.Up):
		if v.cursor > 0 {
			v.cursor--
		}
		return v, nil
	case key.Matches(keyMsg, timerKeys.Down):
		if v.cursor < len(rows)-1 {
			v.cursor++
		}
		return v, nil
	case key.Matches(keyMsg, timerKeys.Add):
		category := ""
		if row, ok := v.selected(); ok {
			category = row.category
		}
		return v, pushView(newAddTimerView(v.state, category))
	case key.Matches(keyMsg, timerKeys.History):
		return v, pushView(newHistoryView(v.state))
	case key.Matches(keyMsg, timerKeys.Export):
		return v, v.export()
	case key.Matches(keyMsg, timerKeys.SavePreset):
		return v, v.savePreset()
	}

	row, ok := v.selected()
	if !ok {
		return v, nil
	}
	timers := v.state.App.Timers

	switch {
	case key.Matches(keyMsg, timerKeys.Collapse):
		v.state.Collapsed[row.category] = !v.state.Collapsed[row.category]
		v.cursor = v.headerIndex(row.category)
	case key.Matches(keyMsg, timerKeys.Toggle):
		if row.isHeader {
			v.state.Collapsed[row.category] = !v.state.Collapsed[row.category]
			return v, nil
		}
		if row.timer.Status == domain.TimerRunning {
			return v, v.timerAction(timers.Pause, row.timer.ID, "Paused", row.timer.Name)
		}
		return v, v.timerAction(timers.Start, row.timer.ID, "Started", row.timer.Name)

	// Single-timer keys act on the whole category when a header is selected.
	case key.Matches(keyMsg, timerKeys.Start):
		if row.isHeader {
			return v, v.categoryAction(timers.StartCategory, row.category, "Started")
		}
		return v, v.timerAction(timers.Start, row.timer.ID, "Started", row.timer.Name)
	case key.Matches(keyMsg, timerKeys.Pause):
		if row.isHeader {
			return v, v.categoryAction(timers.PauseCategory, row.category, "Paused")
		}
		return v, v.timerAction(timers.Pause, row.timer.ID, "Paused", row.timer.Name)
	case key.Matches(keyMsg, timerKeys.Reset):
		if row.isHeader {
			return v, v.categoryAction(timers.ResetCategory, row.category, "Reset")
		}
		return v, v.timerAction(timers.Reset, row.timer.ID, "Reset", row.timer.Name)
	case key.Matches(keyMsg, timerKeys.Complete):
		if !row.isHeader {
			return v, v.timerAction(timers.Complete, row.timer.ID, "Completed", row.timer.Name)
		}
	case key.Matches(keyMsg, timerKeys.Remove):
		if !row.isHeader {
			return v, v.timerAction(timers.Remove, row.timer.ID, "Removed", row.timer.Name)
		}

	case key.Matches(keyMsg, timerKeys.StartCategory):
		return v, v.categoryAction(timers.StartCategory, row.category, "Started")
	case key.Matches(keyMsg, timerKeys.PauseCategory):
		return v, v.categoryAction(timers.PauseCategory, row.category, "Paused")
	case key.Matches(keyMsg, timerKeys.ResetCategory):
		return v, v.categoryAction(timers.ResetCategory, row.category, "Reset")
	}
	return v, nil
}

func (v *timerListView) headerIndex(category string) int {
	for i, r := range v.rows() {
		if r.isHeader && r.category == category {
			return i
		}
	}
	return 0
}

type snapshotOp func(ctx context.Context, arg string) (store.Snapshot, error)

func (v *timerListView) timerAction(op snapshotOp, id, verb, name string) tea.Cmd {
	ctx := v.state.Ctx
	return func() tea.Msg {
		snap, err := op(ctx, id)
		return actionResultMsg{
			snap:   snap,
			status: formatter.Dim(verb + " ") + formatter.Bold(name),
			err:    err,
		}
	}
}

func (v *timerListView) categoryAction(op snapshotOp, category, verb string) tea.Cmd {
	ctx := v.state.Ctx
	return func() tea.Msg {
		snap, err := op(ctx, category)
		return actionResultMsg{
			snap:   snap,
			status: formatter.Dim(verb+" all in ") + formatter.CategoryBadge(category),
			err:    err,
		}
	}
}

func (v *timerListView) export() tea.Cmd {
	hist := v.state.App.History
	if hist == nil {
		return statusCmd(formatter.Error(errors.New("export is not configured")), true)
	}
	ctx := v.state.Ctx
	return func() tea.Msg {
		res, err := hist.Export(ctx)
		if err != nil {
			return statusMsg{text: formatter.Error(err), isErr: true}
		}
		summary := strings.ReplaceAll(formatter.FormatExportSummary(res.Path, res.Entries, res.Run), "\n", "  ")
		return statusMsg{text: summary}
	}
}

func (v *timerListView) savePreset() tea.Cmd {
	path := v.state.App.PresetPath
	if path == "" {
		return statusCmd(formatter.Error(errors.New("no preset file configured (set CHRONO_PRESETS)")), true)
	}
	timers := preset.FromTimers(v.state.Snapshot.Timers)
	ctx := v.state.Ctx
	return func() tea.Msg {
		if err := ctx.Err(); err != nil {
			return statusMsg{text: formatter.Error(err), isErr: true}
		}
		if err := preset.Save(path, timers); err != nil {
			return statusMsg{text: formatter.Error(err), isErr: true}
		}
		return statusMsg{text: formatter.Success(fmt.Sprintf("Saved %s to %s", formatter.Plural(len(timers), "timer"), path))}
	}
}

func (v *timerListView) View() string {
	rows := v.rows()
	if len(rows) == 0 {
		return "\n  " + formatter.Dim("No timers yet. Press a to add one.") + "\n"
	}
	v.cursor = min(max(v.cursor, 0), len(rows)-1)

	lines := make([]string, 0, len(rows))
	for i, r := range rows {
		selected := i == v.cursor
		if r.isHeader {
			header := formatter.FormatCategoryHeader(r.category, v.state.Snapshot.TimersInCategory(r.category), v.state.Collapsed[r.category])
			if selected {
				header = formatter.StyleGreen.Render("▸ ") + header
			} else {
				header = "  " + header
			}
			lines = append(lines, header)
			continue
		}
		lines = append(lines, "  "+formatter.FormatTimerRow(r.timer, selected))
	}

	// Keep the cursor on screen.
	height := v.state.ContentHeight()
	if v.state.Height > 0 && len(lines) > height {
		start := max(0, v.cursor-height+1)
		lines = lines[start : start+height]
	}
	return strings.Join(lines, "\n")
}
