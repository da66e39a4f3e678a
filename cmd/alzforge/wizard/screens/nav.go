package screens

import (
	"github.com/charmbracelet/huh"
	"github.com/mrsinham/alzforge/cmd/alzforge/wizard/help"
	"github.com/mrsinham/alzforge/internal/intake"
)

// Action is the navigation choice that closes a section screen.
type Action int

const (
	ActionNext Action = iota
	ActionBack
	ActionSubmit
)

func (a Action) String() string {
	switch a {
	case ActionNext:
		return "Next"
	case ActionBack:
		return "Back"
	case ActionSubmit:
		return "Submit"
	}
	return "Unknown"
}

// defaultAction is the preselected choice: forward whenever possible.
func defaultAction(nav intake.Navigation) Action {
	if nav.ShowSubmit {
		return ActionSubmit
	}
	if nav.ShowNext {
		return ActionNext
	}
	return ActionBack
}

func navOptions(nav intake.Navigation) []huh.Option[Action] {
	var opts []huh.Option[Action]
	if nav.ShowNext {
		opts = append(opts, huh.NewOption(ActionNext.String(), ActionNext))
	}
	if nav.ShowSubmit {
		opts = append(opts, huh.NewOption(ActionSubmit.String(), ActionSubmit))
	}
	if nav.BackEnabled {
		opts = append(opts, huh.NewOption(ActionBack.String(), ActionBack))
	}
	return opts
}

func newNavSelect(nav intake.Navigation, value *Action) *huh.Select[Action] {
	*value = defaultAction(nav)
	return huh.NewSelect[Action]().
		Key(help.KeyNavigation).
		Title("Continue").
		Options(navOptions(nav)...).
		Inline(true).
		Value(value)
}
