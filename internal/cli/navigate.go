package cli

import (
	"github.com/alexanderramin/chrono/internal/store"
	tea "github.com/charmbracelet/bubbletea"
)

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

// pushViewMsg pushes a new view onto the navigation stack.
type pushViewMsg struct {
	view View
}

// popViewMsg returns to the previous view.
type popViewMsg struct{}

// wizardCompleteMsg pops the form view, then runs nextCmd.
type wizardCompleteMsg struct {
	nextCmd tea.Cmd
}

// statusMsg sets the transient line above the key hints.
type statusMsg struct {
	text  string
	isErr bool
}

// snapshotMsg carries a snapshot published by the store.
type snapshotMsg struct {
	snap store.Snapshot
}

// subscriptionClosedMsg reports that the store stopped publishing.
type subscriptionClosedMsg struct{}

// actionResultMsg carries the outcome of a timer operation.
type actionResultMsg struct {
	snap   store.Snapshot
	status string
	err    error
}

func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

func popView() tea.Cmd {
	return func() tea.Msg { return popViewMsg{} }
}

func statusCmd(text string, isErr bool) tea.Cmd {
	return func() tea.Msg { return statusMsg{text: text, isErr: isErr} }
}

// waitForSnapshot blocks until the store publishes. The app model re-arms it
// after every delivery.
func waitForSnapshot(updates <-chan store.Snapshot) tea.Cmd {
	if updates == nil {
		return nil
	}
	return func() tea.Msg {
		snap, ok := <-updates
		if !ok {
			return subscriptionClosedMsg{}
		}
		return snapshotMsg{snap: snap}
	}
}
