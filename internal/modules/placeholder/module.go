// Package placeholder serves a holding page for every application area the
// introduction page links to, so no link dead-ends while those areas are
// built elsewhere.
package placeholder

import (
	"context"
	"log/slog"
	"strings"

	"github.com/labstack/echo/v4"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nfrund/empireos/internal/module"
	"github.com/nfrund/empireos/internal/nav"
	"github.com/nfrund/empireos/internal/view"
	"github.com/nfrund/empireos/web/src/templates/pages"
)

// Dependencies holds the services the module needs.
type Dependencies struct {
	Navigator nav.Navigator
	Routes    []nav.Route
	// Titles overrides the heading derived from a route's path.
	Titles map[nav.Route]string
}

// Module implements module.Module for the placeholder pages.
type Module struct {
	module.BaseModule
	navigator nav.Navigator
	routes    []nav.Route
	titles    map[nav.Route]string
}

// New creates the module. Without explicit routes it serves nav.Routes().
func New(deps Dependencies) *Module {
	m := &Module{
		navigator: deps.Navigator,
		routes:    deps.Routes,
		titles:    deps.Titles,
	}
	if m.navigator == nil {
		m.navigator = nav.Anchors{}
	}
	if m.routes == nil {
		m.routes = nav.Routes()
	}
	return m
}

func (m *Module) Name() string {
	return "placeholder"
}

func (m *Module) Boot(ctx context.Context, g *echo.Group) error {
	for _, route := range m.routes {
		title := m.Title(route)
		g.GET(string(route), func(c echo.Context) error {
			return view.RenderPage(c, title, pages.ComingSoon(m.navigator, title))
		})
		slog.Debug("placeholder route registered", "route", route, "title", title)
	}
	return nil
}

// Title returns the heading for route: the configured override, or the path
// turned into title case ("/woven-supply" becomes "Woven Supply").
func (m *Module) Title(route nav.Route) string {
	if t, ok := m.titles[route]; ok && t != "" {
		return t
	}
	words := strings.ReplaceAll(strings.Trim(string(route), "/"), "-", " ")
	return cases.Title(language.English).String(words)
}
