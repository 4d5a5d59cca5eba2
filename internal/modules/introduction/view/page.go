// Package view holds the gomponents markup for the introduction page.
package view

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/nfrund/empireos/internal/nav"
)

// PageTitle is the document title of the introduction page.
const PageTitle = "Introduction"

var frameworkPoints = []string{
	"Modular licensing structure ensures targeted revenue streams from each business function",
	"Integrated marketplaces reduce friction and increase transaction volume",
	"Governance mechanisms protect value and enforce profitable trade relationships",
	"Robust analytics enable data-driven optimization of your entire business network",
	"Automated compliance reduces operational costs while maintaining regulatory standards",
}

var gettingStarted = []string{
	"Register your business through Synergyze",
	"Create your DigitalMe identity profile",
	"Apply for appropriate licenses for your business type",
	"Connect to either Woven Supply (manufacturing) or Commune Connect (retail)",
	"Begin transactions on the Virtual Silk Road",
}

// Page renders the introduction page body. Sections render in a fixed order
// and every link goes through n.
func Page(n nav.Navigator) g.Node {
	return h.Div(
		h.Class("max-w-4xl mx-auto"),
		hero(),
		overview(n),
		moduleGrid(n),
		framework(n),
		steps(),
	)
}

func hero() g.Node {
	return h.Section(
		h.Class("mb-10"),
		h.H1(h.Class("text-4xl font-bold mb-4"), g.Text("Welcome to Empire OS")),
		h.P(
			h.Class("text-xl text-gray-400"),
			g.Text("The unified digital governance platform where structure creates value, roles drive efficiency, and commerce flows in harmony across the Virtual Silk Road."),
		),
	)
}

func overview(n nav.Navigator) g.Node {
	return h.Section(
		h.Class("grid grid-cols-1 md:grid-cols-2 gap-8 mb-12"),
		h.Div(
			h.Class("bg-gray-800 p-6 rounded-lg"),
			h.H2(h.Class("text-2xl font-bold mb-3 text-amber-400"), g.Text("Ecosystem Overview")),
			h.P(
				h.Class("mb-4"),
				g.Text("Empire OS is a modular governance platform that orchestrates business interactions, licensing, identity, and commerce across interconnected marketplaces to maximize profit potential and operational efficiency."),
			),
			nav.Link(n, nav.Dashboard, "text-blue-400 hover:underline", "Explore Dashboard →"),
		),
		h.Div(
			h.Class("bg-gray-800 p-6 rounded-lg"),
			h.H2(h.Class("text-2xl font-bold mb-3 text-green-500"), g.Text("Governance Structure")),
			h.P(
				h.Class("mb-4"),
				g.Text("Our digital economy is governed through Empire OS, administered by ECG, licensed via Synergyze, with identities secured through DigitalMe — creating a seamless ecosystem for revenue generation."),
			),
			nav.Link(n, nav.ECGCouncil, "text-blue-400 hover:underline", "Learn about Governance →"),
		),
	)
}

func moduleGrid(n nav.Navigator) g.Node {
	return h.Section(
		h.Class("mb-12"),
		h.H2(h.Class("text-2xl font-bold mb-6"), g.Text("Core Modules")),
		h.Div(
			h.Class("grid grid-cols-1 md:grid-cols-3 gap-6"),
			g.Map(Descriptors(), func(d Descriptor) g.Node {
				return ModuleCard(n, d)
			}),
		),
	)
}

func framework(n nav.Navigator) g.Node {
	return h.Section(
		h.Class("bg-gray-800 p-8 rounded-lg mb-10"),
		h.H2(h.Class("text-2xl font-bold mb-4"), g.Text("Profit Maximization Framework")),
		h.P(h.Class("mb-6"), g.Text("Empire OS is designed to optimize every transaction within your digital commerce ecosystem:")),
		h.Ul(
			h.Class("list-disc pl-6 space-y-3"),
			g.Map(frameworkPoints, func(s string) g.Node { return h.Li(g.Text(s)) }),
		),
		h.Div(
			h.Class("mt-6"),
			nav.Link(n, nav.Dashboard, "bg-blue-600 hover:bg-blue-700 text-white font-bold py-2 px-4 rounded", "Begin Maximizing Value"),
		),
	)
}

func steps() g.Node {
	return h.Section(
		h.Class("mb-10"),
		h.H2(h.Class("text-2xl font-bold mb-4"), g.Text("Getting Started")),
		h.P(h.Class("mb-6"), g.Text("New to Empire OS? Follow these steps to begin your journey toward optimized business operations:")),
		h.Ol(
			h.Class("list-decimal pl-6 space-y-3"),
			g.Map(gettingStarted, func(s string) g.Node { return h.Li(g.Text(s)) }),
		),
	)
}
