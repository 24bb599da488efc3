package output

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// Confirmer asks whether an existing file may be replaced
type Confirmer interface {
	Confirm(path string) (bool, error)
}

// AlwaysConfirm approves every overwrite
type AlwaysConfirm struct{}

// Confirm always returns true
func (AlwaysConfirm) Confirm(string) (bool, error) { return true, nil }

// NeverConfirm declines every overwrite
type NeverConfirm struct{}

// Confirm always returns false
func (NeverConfirm) Confirm(string) (bool, error) { return false, nil }

// FormConfirmer asks on the terminal with a yes/no form
type FormConfirmer struct {
	opts []tea.ProgramOption
}

// NewFormConfirmer creates a terminal confirmer. Program options are used by
// tests to feed input.
func NewFormConfirmer(opts ...tea.ProgramOption) *FormConfirmer {
	return &FormConfirmer{opts: opts}
}

// Confirm shows the overwrite prompt for path
func (c *FormConfirmer) Confirm(path string) (bool, error) {
	var ok bool
	form := createConfirmForm(path, &ok)

	if len(c.opts) > 0 {
		program := tea.NewProgram(form, c.opts...)
		if _, err := program.Run(); err != nil {
			return false, err
		}
	} else {
		if err := form.Run(); err != nil {
			return false, err
		}
	}

	return ok, nil
}

func createConfirmForm(path string, ok *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Overwrite '%s'?", path)).
				Description("Confirm Overwrite").
				Affirmative("Yes").
				Negative("No").
				Value(ok),
		),
	)
}
