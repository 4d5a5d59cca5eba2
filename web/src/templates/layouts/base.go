package layouts

import (
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"
)

// RegionID is the id of the region navigation swaps in place.
const RegionID = "content"

// Region wraps page markup in the swappable main region. HTMX requests
// receive only this node.
func Region(page g.Node) g.Node {
	return h.Main(h.ID(RegionID), h.Class("p-8"), page)
}

// Fragment is the htmx response for a page: the title, which htmx moves into
// document.title, followed by the swappable region.
func Fragment(title string, page g.Node) g.Node {
	return g.Group{
		h.TitleEl(g.Text(CalculateTitle(title))),
		Region(page),
	}
}

// Base renders the full HTML document around a page.
func Base(title string, page g.Node) g.Node {
	return c.HTML5(c.HTML5Props{
		Title:    CalculateTitle(title),
		Language: "en",
		Head: []g.Node{
			h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
			h.Script(h.Src("https://cdn.tailwindcss.com")),
			h.Script(h.Src("https://unpkg.com/htmx.org@2.0.4"), h.Defer()),
			h.Link(h.Rel("stylesheet"), h.Href("/static/app.css")),
		},
		Body: []g.Node{
			h.Class("bg-gray-900 text-gray-100 min-h-screen"),
			Region(page),
		},
	})
}
