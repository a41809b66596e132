package cli

import (
	"sort"
	"strings"
	"time"

	"github.com/alexanderramin/chrono/internal/cli/formatter"
	"github.com/alexanderramin/chrono/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// historyView shows completed timers newest first in a scrollable
// viewport, followed by per-category totals.
type historyView struct {
	state *SharedState
	vp    viewport.Model
	// Version rendered into the viewport; content is rebuilt when it moves.
	rendered uint64
	ready    bool
}

func newHistoryView(state *SharedState) *historyView {
	vp := viewport.New(state.Width, state.ContentHeight())
	vp.KeyMap = historyViewportKeyMap()
	return &historyView{state: state, vp: vp}
}

func (v *historyView) ID() ViewID    { return ViewHistory }
func (v *historyView) Title() string { return "History" }

func (v *historyView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "scroll")),
		timerKeys.Export,
	}
}

func (v *historyView) Init() tea.Cmd { return nil }

func (v *historyView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.vp.Width = msg.Width
		v.vp.Height = v.state.ContentHeight()
		return v, nil
	case tea.KeyMsg:
		if key.Matches(msg, timerKeys.Export) {
			list := timerListView{state: v.state}
			return v, list.export()
		}
	}
	var cmd tea.Cmd
	v.vp, cmd = v.vp.Update(msg)
	return v, cmd
}

func (v *historyView) View() string {
	snap := v.state.Snapshot
	if !v.ready || v.rendered != snap.Version {
		v.vp.SetContent(renderHistory(snap.History))
		v.rendered = snap.Version
		v.ready = true
	}
	if v.state.Height == 0 {
		return renderHistory(snap.History)
	}
	return v.vp.View()
}

func renderHistory(entries []domain.HistoryEntry) string {
	if len(entries) == 0 {
		return "\n  " + formatter.Dim("Nothing completed yet.") + "\n"
	}
	var b strings.Builder
	b.WriteString(formatter.FormatHistoryTable(entries, time.Local))
	b.WriteString("\n")
	b.WriteString(formatter.Header("By category"))
	b.WriteString("\n")
	b.WriteString(formatter.FormatCategoryTotals(historyTotals(entries)))
	return b.String()
}

// historyTotals sums in-memory history the same way the archive does:
// most seconds first, then by name.
func historyTotals(entries []domain.HistoryEntry) []domain.CategoryTotal {
	index := make(map[string]int)
	var totals []domain.CategoryTotal
	for _, e := range entries {
		i, ok := index[e.Category]
		if !ok {
			i = len(totals)
			index[e.Category] = i
			totals = append(totals, domain.CategoryTotal{Category: e.Category})
		}
		totals[i].Completions++
		totals[i].TotalSeconds += e.Duration
	}
	sort.SliceStable(totals, func(i, j int) bool {
		if totals[i].TotalSeconds != totals[j].TotalSeconds {
			return totals[i].TotalSeconds > totals[j].TotalSeconds
		}
		return totals[i].Category < totals[j].Category
	})
	return totals
}

// historyViewportKeyMap leaves letter keys free for global shortcuts.
func historyViewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		Up:           key.NewBinding(key.WithKeys("up")),
		Down:         key.NewBinding(key.WithKeys("down")),
	}
}
