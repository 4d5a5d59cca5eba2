package pages

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/empireos/internal/nav"
)

func TestComingSoon(t *testing.T) {
	rec := nav.NewRecorder(nil)

	var buf bytes.Buffer
	require.NoError(t, ComingSoon(rec, "Woven Supply").Render(&buf))

	assert.Contains(t, buf.String(), `<h1 class="text-4xl font-bold mb-4">Woven Supply</h1>`)
	assert.Equal(t, []nav.Route{nav.Home}, rec.Requests())
}
