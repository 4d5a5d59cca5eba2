package placeholder_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/empireos/internal/modules/placeholder"
	"github.com/nfrund/empireos/internal/nav"
	"github.com/nfrund/empireos/internal/rendering"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTitle(t *testing.T) {
	m := placeholder.New(placeholder.Dependencies{
		Titles: map[nav.Route]string{nav.Synergyze: "Synergyze"},
	})

	tests := []struct {
		route nav.Route
		want  string
	}{
		{route: nav.Dashboard, want: "Dashboard"},
		{route: nav.WovenSupply, want: "Woven Supply"},
		{route: nav.CommuneConnect, want: "Commune Connect"},
		{route: nav.Synergyze, want: "Synergyze"},
	}

	for _, tt := range tests {
		t.Run(string(tt.route), func(t *testing.T) {
			assert.Equal(t, tt.want, m.Title(tt.route))
		})
	}
}

func TestBoot_ServesEveryRoute(t *testing.T) {
	e := echo.New()
	e.Renderer = rendering.NewUniversalRenderer()

	m := placeholder.New(placeholder.Dependencies{
		Titles: map[nav.Route]string{nav.ECGCouncil: "ECG Council"},
	})
	require.NoError(t, m.Boot(context.Background(), e.Group("")))

	for _, route := range nav.Routes() {
		t.Run(string(route), func(t *testing.T) {
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, string(route), nil))

			require.Equal(t, http.StatusOK, rec.Code)
			body := rec.Body.String()
			assert.Contains(t, body, "not available yet")
			assert.Contains(t, body, `href="/"`)
		})
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, string(nav.ECGCouncil), nil))
	assert.Contains(t, rec.Body.String(), "<title>ECG Council - Empire OS</title>")
}
