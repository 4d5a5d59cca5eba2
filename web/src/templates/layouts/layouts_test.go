package layouts

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
)

func TestCalculateTitle(t *testing.T) {
	assert.Equal(t, "Introduction - Empire OS", CalculateTitle("Introduction"))
	assert.Equal(t, "Empire OS", CalculateTitle(""))
}

func TestBase(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Base("Introduction", g.Text("hello")).Render(&buf))
	out := buf.String()

	assert.Contains(t, out, `<html lang="en">`)
	assert.Contains(t, out, "<title>Introduction - Empire OS</title>")
	assert.Contains(t, out, `<link rel="stylesheet" href="/static/app.css">`)
	assert.Contains(t, out, `<main id="content" class="p-8">hello</main>`)
}

func TestFragment(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Fragment("Emperor View", g.Text("hello")).Render(&buf))

	assert.Equal(t, `<title>Emperor View - Empire OS</title><main id="content" class="p-8">hello</main>`, buf.String())
}
