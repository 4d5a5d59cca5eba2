package view

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/nfrund/empireos/internal/nav"
)

// Descriptor describes one platform module shown on the introduction page.
type Descriptor struct {
	Title       string
	Description string
	Accent      Accent
	Route       nav.Route
}

// Descriptors returns the core modules in display order.
func Descriptors() []Descriptor {
	return []Descriptor{
		{
			Title:       "Synergyze",
			Description: "Where businesses are born and powered. Register companies, manage licenses, and access modules to unlock new revenue streams.",
			Accent:      Amber400,
			Route:       nav.Synergyze,
		},
		{
			Title:       "DigitalMe",
			Description: "Your Digital DNA across the Empire. Manage identity, roles, and access controls for optimized business operations.",
			Accent:      Blue500,
			Route:       nav.DigitalMe,
		},
		{
			Title:       "Woven Supply",
			Description: "The pre-retail marketplace where manufacturing meets demand, driving efficient production and maximizing supplier margins.",
			Accent:      Sky400,
			Route:       nav.WovenSupply,
		},
		{
			Title:       "Commune Connect",
			Description: "The gateway to consumer engagement. Connect brands to buyers and optimize retail channels for maximum ROI.",
			Accent:      Amber500,
			Route:       nav.CommuneConnect,
		},
		{
			Title:       "ECG Council",
			Description: "Ministry of Internal Affairs + External Partner Enablement, overseeing profit-sharing models and commission structures.",
			Accent:      Green500,
			Route:       nav.ECGCouncil,
		},
		{
			Title:       "Emperor View",
			Description: "Full visibility of the Silk Road with aggregated performance analytics for strategic decision-making and profit monitoring.",
			Accent:      Purple500,
			Route:       nav.EmperorView,
		},
	}
}

// ModuleCard renders a single module as an accented card with a link to the
// module's route. Fields are rendered as given.
func ModuleCard(n nav.Navigator, d Descriptor) g.Node {
	return h.Div(
		h.Class("module-card bg-gray-800 p-4 rounded-lg border-l-4 "+d.Accent.BorderClass()),
		h.H3(h.Class("text-xl font-bold mb-2 "+d.Accent.TextClass()), g.Text(d.Title)),
		h.P(h.Class("mb-3 text-sm"), g.Text(d.Description)),
		nav.Link(n, d.Route, "text-blue-400 text-sm hover:underline", "Explore Module →"),
	)
}
