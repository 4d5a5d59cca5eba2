package view

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"maragu.dev/gomponents"

	"github.com/nfrund/empireos/web/src/templates/layouts"
)

// HeaderHXRequest is set by htmx on every request it issues.
const HeaderHXRequest = "HX-Request"

// IsHTMX reports whether the request came from htmx.
func IsHTMX(c echo.Context) bool {
	return c.Request().Header.Get(HeaderHXRequest) == "true"
}

// Layout returns the node to send for a page body: the titled swappable region
// for htmx requests, the full document otherwise.
func Layout(c echo.Context, title string, body gomponents.Node) gomponents.Node {
	if IsHTMX(c) {
		return layouts.Fragment(title, body)
	}
	return layouts.Base(title, body)
}

// RenderPage wraps body in the layout and renders it through the echo renderer.
// Both variants are served from the same URL, so every response varies on HX-Request.
func RenderPage(c echo.Context, title string, body gomponents.Node) error {
	c.Response().Header().Add(echo.HeaderVary, HeaderHXRequest)
	return c.Render(http.StatusOK, "", AdaptGomponentToTempl(Layout(c, title, body)))
}
