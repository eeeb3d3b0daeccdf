package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/renato0307/gittree/internal/domain"
)

// OperationForm asks the user to confirm a dangerous operation or to name the
// branch or tag it creates
type OperationForm struct {
	Cancelled bool
	Completed bool
	confirmed bool
	form      *huh.Form
	intent    domain.Intent
}

// NewConfirmForm creates a confirmation prompt for a dangerous operation
func NewConfirmForm(intent domain.Intent) *OperationForm {
	f := &OperationForm{intent: intent}

	description := "HEAD will be detached at this commit."
	if intent.Op == domain.OpReset {
		description = "Uncommitted changes in the working tree will be lost."
	}

	f.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("%s %s?", capitalize(intent.Op.String()), intent.ShortHash)).
				Description(description).
				Value(&f.confirmed).
				Affirmative("Yes").
				Negative("No"),
		),
	)
	return f
}

// NewRefNameForm creates a prompt for the name of a new branch or tag,
// pre-filled with intent.Name
func NewRefNameForm(intent domain.Intent) *OperationForm {
	f := &OperationForm{intent: intent, confirmed: true}

	title := "Branch name"
	if intent.Op == domain.OpCreateTag {
		title = "Tag name"
	}

	f.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Description(fmt.Sprintf("At commit %s", intent.ShortHash)).
				Value(&f.intent.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return domain.ErrEmptyName
					}
					return nil
				}),
		),
	)
	return f
}

func (f *OperationForm) Init() tea.Cmd {
	return f.form.Init()
}

func (f *OperationForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			f.Cancelled = true
			f.Completed = true
			return f, nil
		}
	}

	model, cmd := f.form.Update(msg)
	if form, ok := model.(*huh.Form); ok {
		f.form = form
	}

	switch f.form.State {
	case huh.StateCompleted:
		f.Completed = true
		f.Cancelled = !f.confirmed
	case huh.StateAborted:
		f.Completed = true
		f.Cancelled = true
	}

	return f, cmd
}

func (f *OperationForm) View() string {
	return f.form.View()
}

// Intent returns the operation to run once the form completed without cancel
func (f *OperationForm) Intent() domain.Intent {
	return f.intent
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
