package ui

import (
	"github.com/charmbracelet/huh"
	"github.com/rileyhilliard/termviz/internal/errors"
)

// View names offered by the menu. They double as the values returned by ChooseView.
const (
	ViewStatus    = "status"
	ViewGraph     = "graph"
	ViewDashboard = "dashboard"
)

// MenuOption is one entry of the view menu.
type MenuOption struct {
	Label string
	View  string
}

// MenuOptions lists the views in menu order.
var MenuOptions = []MenuOption{
	{Label: "API Dashboard", View: ViewStatus},
	{Label: "Network", View: ViewGraph},
	{Label: "Metrics Dashboard", View: ViewDashboard},
}

// LabelFor returns the menu label of a view, or "" for unknown views.
func LabelFor(view string) string {
	for _, o := range MenuOptions {
		if o.View == view {
			return o.Label
		}
	}
	return ""
}

// ChooseView asks which view to open. It must only be called on a terminal.
func ChooseView() (string, error) {
	options := make([]huh.Option[string], 0, len(MenuOptions))
	for _, o := range MenuOptions {
		options = append(options, huh.NewOption(o.Label, o.View))
	}

	var selected string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Choose a view").
				Options(options...).
				Value(&selected),
		),
	)

	if err := form.Run(); err != nil {
		return "", errors.WrapWithCode(err, errors.ErrInput,
			"View selection cancelled",
			"Run 'termviz dashboard', 'termviz graph' or 'termviz status' directly")
	}
	return selected, nil
}
