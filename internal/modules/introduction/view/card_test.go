package view_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nfrund/empireos/internal/modules/introduction/view"
	"github.com/nfrund/empireos/internal/nav"
)

func TestModuleCard(t *testing.T) {
	d := view.Descriptor{
		Title:       "Emperor View",
		Description: "Full visibility.",
		Accent:      view.Purple500,
		Route:       nav.EmperorView,
	}

	got := render(t, view.ModuleCard(nav.Anchors{}, d))

	assert.Equal(t, `<div class="module-card bg-gray-800 p-4 rounded-lg border-l-4 border-purple-500">`+
		`<h3 class="text-xl font-bold mb-2 text-purple-500">Emperor View</h3>`+
		`<p class="mb-3 text-sm">Full visibility.</p>`+
		`<a href="/emperor-view" class="text-blue-400 text-sm hover:underline">Explore Module →</a>`+
		`</div>`, got)
}

func TestModuleCard_EscapesText(t *testing.T) {
	got := render(t, view.ModuleCard(nav.Anchors{}, view.Descriptor{
		Title: "<script>", Accent: view.Blue500, Route: nav.DigitalMe,
	}))

	assert.Contains(t, got, "&lt;script&gt;")
	assert.NotContains(t, got, "<script>")
}

func TestModuleCard_EmptyDescriptor(t *testing.T) {
	got := render(t, view.ModuleCard(nav.Anchors{}, view.Descriptor{}))

	assert.Contains(t, got, `border-l-4 border-"`)
	assert.Contains(t, got, `<h3 class="text-xl font-bold mb-2 text-"></h3>`)
}

func TestDescriptors(t *testing.T) {
	ds := view.Descriptors()
	assert.Len(t, ds, 6)

	for _, d := range ds {
		assert.NotEmpty(t, d.Title)
		assert.NotEmpty(t, d.Description)
		assert.NotEmpty(t, d.Accent)
		_, err := nav.Lookup(string(d.Route))
		assert.NoError(t, err, d.Title)
	}

	ds[0].Title = "changed"
	assert.Equal(t, "Synergyze", view.Descriptors()[0].Title)
}

func TestAccentClasses(t *testing.T) {
	assert.Equal(t, "border-sky-400", view.Sky400.BorderClass())
	assert.Equal(t, "text-amber-500", view.Amber500.TextClass())
}
