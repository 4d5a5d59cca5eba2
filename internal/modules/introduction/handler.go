package introduction

import (
	"github.com/labstack/echo/v4"

	"github.com/nfrund/empireos/internal/middleware"
	"github.com/nfrund/empireos/internal/modules/introduction/view"
	"github.com/nfrund/empireos/internal/nav"
	gview "github.com/nfrund/empireos/internal/view"
)

// Handler serves the introduction page.
type Handler struct {
	nav nav.Navigator
}

// NewHandler creates a new Handler that links through n.
func NewHandler(n nav.Navigator) *Handler {
	return &Handler{nav: n}
}

// Get renders the introduction page.
func (h *Handler) Get(c echo.Context) error {
	middleware.FromContext(c.Request().Context()).Debug("rendering introduction", "htmx", gview.IsHTMX(c))
	return gview.RenderPage(c, view.PageTitle, view.Page(h.nav))
}
