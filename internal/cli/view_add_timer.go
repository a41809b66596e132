package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/chrono/internal/cli/formatter"
	"github.com/alexanderramin/chrono/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// addTimerFields holds form-bound values for the add timer form.
type addTimerFields struct {
	name     string
	category string
	duration string
	halfway  bool
}

// newAddTimerView builds the add form, prefilling category.
func newAddTimerView(state *SharedState, category string) View {
	fields := &addTimerFields{category: category, duration: "60"}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Placeholder("Tea").
				Value(&fields.name).
				Validate(domain.ValidateName),
			huh.NewInput().
				Title("Category").
				Placeholder("Kitchen").
				Suggestions(state.Snapshot.Categories()).
				Value(&fields.category).
				Validate(domain.ValidateCategory),
			huh.NewInput().
				Title("Duration").
				Description("Seconds, or a duration like 2m30s").
				Placeholder("60").
				Value(&fields.duration).
				Validate(func(s string) error {
					_, err := parseSeconds(s)
					return err
				}),
			huh.NewConfirm().
				Title("Halfway alert?").
				Affirmative("Yes").
				Negative("No").
				Value(&fields.halfway),
		),
	).WithTheme(chronoHuhTheme()).WithShowHelp(false)

	done := func() tea.Cmd {
		return func() tea.Msg { return applyAddTimer(state.Ctx, state.App, fields) }
	}
	return newWizardView(state, "Add Timer", form, done)
}

// applyAddTimer creates the timer described by fields and reports the
// result as a tea.Msg.
func applyAddTimer(ctx context.Context, app *App, fields *addTimerFields) tea.Msg {
	seconds, err := parseSeconds(fields.duration)
	if err != nil {
		return statusMsg{text: formatter.Error(err), isErr: true}
	}
	t, err := app.Timers.Add(ctx, fields.name, fields.category, seconds, fields.halfway)
	if err != nil {
		return statusMsg{text: formatter.Error(err), isErr: true}
	}
	return actionResultMsg{
		snap: app.Store.Snapshot(),
		status: formatter.Success(fmt.Sprintf("Added %s to %s (%s)",
			formatter.Bold(t.Name), formatter.CategoryBadge(t.Category), formatter.FormatSeconds(t.Duration))),
	}
}
