package pages

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/nfrund/empireos/internal/nav"
)

// ComingSoon is the body shown for application areas that are linked from the
// introduction page but are served elsewhere.
func ComingSoon(n nav.Navigator, title string) g.Node {
	return h.Div(
		h.Class("max-w-4xl mx-auto"),
		h.Div(
			h.Class("bg-gray-800 p-10 rounded-lg"),
			h.H1(
				h.Class("text-4xl font-bold mb-4"),
				g.Text(title),
			),
			h.P(
				h.Class("text-gray-400 mb-6"),
				g.Text("This area of Empire OS is not available yet."),
			),
			nav.Link(n, nav.Home, "text-blue-400 hover:underline", "← Back to Introduction"),
		),
	)
}
