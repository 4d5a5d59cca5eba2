// Package nav defines the navigation capability pages use to link to other
// parts of the application.
//
// Pages never build hrefs by hand. They ask a Navigator for the attributes
// that request a transition to a Route, which keeps the router itself outside
// of the page and lets tests observe every navigation request a page makes.
package nav

import (
	"errors"
	"fmt"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// Route is an application path that a page may request navigation to.
type Route string

// Home is the landing route of the application.
const Home Route = "/"

// The routes the introduction page links to.
const (
	Dashboard      Route = "/dashboard"
	ECGCouncil     Route = "/ecg-council"
	Synergyze      Route = "/synnergyze"
	DigitalMe      Route = "/digitalme"
	WovenSupply    Route = "/woven-supply"
	CommuneConnect Route = "/commune-connect"
	EmperorView    Route = "/emperor-view"
)

// ErrUnknownRoute is returned when a path is not one of Routes.
var ErrUnknownRoute = errors.New("unknown route")

var routes = []Route{
	Dashboard,
	ECGCouncil,
	Synergyze,
	DigitalMe,
	WovenSupply,
	CommuneConnect,
	EmperorView,
}

// Routes returns the routes the introduction page links to, in a stable order.
func Routes() []Route {
	out := make([]Route, len(routes))
	copy(out, routes)
	return out
}

// Lookup resolves a raw path to a known Route.
func Lookup(path string) (Route, error) {
	for _, r := range routes {
		if string(r) == path {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRoute, path)
}

// Navigator turns a navigation request into the attributes an element needs
// so that activating it asks the router to move to route.
type Navigator interface {
	RequestNavigation(route Route) g.Node
}

// Anchors requests navigation with plain hrefs.
type Anchors struct{}

func (Anchors) RequestNavigation(route Route) g.Node {
	return h.Href(string(route))
}

// HTMX requests navigation by swapping the target region in place while
// keeping the href as a full page fallback.
type HTMX struct {
	// Target is the CSS selector of the region that is replaced. It is also
	// used as hx-select so full page responses are trimmed to that region.
	Target string
}

func (n HTMX) RequestNavigation(route Route) g.Node {
	target := n.Target
	if target == "" {
		target = "#content"
	}
	return g.Group{
		h.Href(string(route)),
		hx.Get(string(route)),
		hx.Target(target),
		hx.Select(target),
		hx.Swap("outerHTML"),
		hx.PushURL("true"),
	}
}

// Link renders an anchor that requests navigation to route.
func Link(n Navigator, route Route, class string, text string) g.Node {
	return h.A(
		n.RequestNavigation(route),
		h.Class(class),
		g.Text(text),
	)
}
