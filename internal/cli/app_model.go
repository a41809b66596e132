package cli

import (
	"context"
	"strings"

	"github.com/alexanderramin/chrono/internal/cli/formatter"
	"github.com/alexanderramin/chrono/internal/domain"
	"github.com/alexanderramin/chrono/internal/store"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// fullHelper is implemented by views with more bindings than fit the
// short hint bar.
type fullHelper interface {
	FullHelp() [][]key.Binding
}

// appModel is the root bubbletea Model for the TUI.
// It manages the view stack and re-renders on every store snapshot.
type appModel struct {
	state     *SharedState
	viewStack []View
	help      help.Model
	updates   <-chan store.Snapshot
	quitting  bool
}

func newAppModel(ctx context.Context, app *App, updates <-chan store.Snapshot) appModel {
	state := newSharedState(ctx, app)

	h := help.New()
	h.Styles.ShortKey = formatter.StyleFg
	h.Styles.ShortDesc = formatter.StyleDim
	h.Styles.ShortSeparator = formatter.StyleDim
	h.Styles.FullKey = formatter.StyleFg
	h.Styles.FullDesc = formatter.StyleDim
	h.Styles.FullSeparator = formatter.StyleDim

	return appModel{
		state:     state,
		viewStack: []View{newTimerListView(state)},
		help:      h,
		updates:   updates,
	}
}

// activeView returns the top view on the stack, or nil.
func (m *appModel) activeView() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

// setActiveView replaces the top of the view stack.
func (m *appModel) setActiveView(v View) {
	if len(m.viewStack) > 0 {
		m.viewStack[len(m.viewStack)-1] = v
	}
}

func (m *appModel) forward(msg tea.Msg) tea.Cmd {
	v := m.activeView()
	if v == nil {
		return nil
	}
	updated, cmd := v.Update(msg)
	m.setActiveView(updated.(View))
	return cmd
}

// apply stores snap and announces timers that just passed halfway.
func (m *appModel) apply(snap store.Snapshot) {
	crossed := m.state.Apply(snap)
	if len(crossed) > 0 {
		t := crossed[len(crossed)-1]
		m.state.SetStatus(formatter.FormatHalfwayAlert(t, m.state.App.now()), false)
	}
}

func (m appModel) Init() tea.Cmd {
	var cmds []tea.Cmd
	cmds = append(cmds, waitForSnapshot(m.updates))
	if v := m.activeView(); v != nil {
		cmds = append(cmds, v.Init())
	}
	return tea.Batch(cmds...)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.help.Width = msg.Width
		return m, m.forward(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case snapshotMsg:
		m.apply(msg.snap)
		return m, waitForSnapshot(m.updates)

	case subscriptionClosedMsg:
		m.updates = nil
		return m, nil

	case actionResultMsg:
		if msg.err != nil {
			m.state.SetStatus(formatter.Error(msg.err), true)
			return m, nil
		}
		m.apply(msg.snap)
		if msg.status != "" {
			m.state.SetStatus(msg.status, false)
		}
		return m, nil

	case statusMsg:
		m.state.SetStatus(msg.text, msg.isErr)
		return m, nil

	case pushViewMsg:
		m.viewStack = append(m.viewStack, msg.view)
		return m, msg.view.Init()

	case popViewMsg:
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, nil

	case wizardCompleteMsg:
		// Pop the form and run the follow-up in one step.
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, msg.nextCmd
	}

	return m, m.forward(msg)
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global quit
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	// Forms receive every key, including q and esc.
	if v := m.activeView(); v != nil && viewCapturesInput(v) {
		return m, m.forward(msg)
	}

	switch {
	case key.Matches(msg, quitKey):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, helpKey):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, backKey):
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, nil
	}

	return m, m.forward(msg)
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	var sections []string
	sections = append(sections, m.renderHeader())
	if v := m.activeView(); v != nil {
		sections = append(sections, v.View())
	}
	sections = append(sections, m.renderStatusBar())

	result := strings.Join(sections, "\n")

	// Pad to terminal height so the alt-screen renderer clears stale lines.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}
	return result
}

func (m *appModel) renderHeader() string {
	title := formatter.StylePurple.Render("chrono")

	var crumbs []string
	for _, v := range m.viewStack {
		if t := v.Title(); t != "" {
			crumbs = append(crumbs, t)
		}
	}
	breadcrumb := ""
	if len(crumbs) > 0 {
		breadcrumb = " " + formatter.Dim("›") + " " + formatter.Dim(strings.Join(crumbs, " › "))
	}

	header := title + breadcrumb
	if running := len(m.state.Snapshot.Running()); running > 0 {
		header += "  " + formatter.StyleGreen.Render(formatter.StatusIcon(domain.TimerRunning)+" "+formatter.Plural(running, "running timer"))
	}

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return header + "\n" + sep
}

func (m *appModel) renderStatusBar() string {
	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))

	status := m.state.Status

	v := m.activeView()
	var hints string
	if v != nil {
		bindings := v.ShortHelp()
		if !viewCapturesInput(v) {
			if len(m.viewStack) > 1 {
				bindings = append(bindings, backKey)
			}
			bindings = append(bindings, helpKey, quitKey)
		}
		hints = m.help.ShortHelpView(bindings)
		if fh, ok := v.(fullHelper); ok && m.help.ShowAll {
			hints = m.help.FullHelpView(fh.FullHelp())
		}
	}
	return sep + "\n" + status + "\n" + hints
}
