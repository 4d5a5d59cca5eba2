// Package introduction serves the Empire OS introduction page.
package introduction

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/empireos/internal/module"
	"github.com/nfrund/empireos/internal/modules/introduction/view"
	"github.com/nfrund/empireos/internal/nav"
	"github.com/nfrund/empireos/internal/rendering"
	"github.com/nfrund/empireos/web/src/templates/layouts"
)

// Path is where the page is mounted besides the site root.
const Path = "/introduction"

// Dependencies holds the services the module needs.
type Dependencies struct {
	Navigator nav.Navigator
}

// Module implements module.Module for the introduction page.
type Module struct {
	module.BaseModule
	navigator nav.Navigator
}

// New creates the module. A nil navigator falls back to plain anchors.
func New(deps Dependencies) *Module {
	n := deps.Navigator
	if n == nil {
		n = nav.Anchors{}
	}
	return &Module{navigator: n}
}

func (m *Module) Name() string {
	return "introduction"
}

// Boot registers the page on the site root and on Path.
func (m *Module) Boot(ctx context.Context, g *echo.Group) error {
	handler := NewHandler(m.navigator)
	g.GET(string(nav.Home), handler.Get)
	g.GET(Path, handler.Get)
	return nil
}

// Render returns the introduction page as bytes, as a full document or as the
// titled fragment htmx receives.
func Render(ctx context.Context, r rendering.Renderer, n nav.Navigator, fragment bool) ([]byte, error) {
	body := view.Page(n)
	if fragment {
		return r.RenderComponent(ctx, layouts.Fragment(view.PageTitle, body))
	}
	return r.RenderComponent(ctx, layouts.Base(view.PageTitle, body))
}
