package app

import (
	"github.com/nfrund/empireos/internal/module"
	"github.com/nfrund/empireos/internal/modules/introduction"
	introview "github.com/nfrund/empireos/internal/modules/introduction/view"
	"github.com/nfrund/empireos/internal/modules/placeholder"
	"github.com/nfrund/empireos/internal/nav"
)

// Dependencies holds the core services that are required by the application's modules.
type Dependencies struct {
	Navigator nav.Navigator
}

// NewModules creates and returns the list of all active modules for the application.
// This is the single source of truth for which features are enabled.
func NewModules(deps Dependencies) []module.Module {
	// Placeholder pages reuse the card titles of the modules they stand in for.
	titles := map[nav.Route]string{}
	for _, d := range introview.Descriptors() {
		titles[d.Route] = d.Title
	}

	return []module.Module{
		introduction.New(introduction.Dependencies{
			Navigator: deps.Navigator,
		}),
		placeholder.New(placeholder.Dependencies{
			Navigator: deps.Navigator,
			Routes:    nav.Routes(),
			Titles:    titles,
		}),
	}
}
