package server

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/nfrund/empireos/internal/app"
	"github.com/nfrund/empireos/internal/config"
	"github.com/nfrund/empireos/internal/middleware"
	"github.com/nfrund/empireos/internal/module"
	"github.com/nfrund/empireos/internal/nav"
	"github.com/nfrund/empireos/internal/rendering"
	"github.com/nfrund/empireos/web"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E         *echo.Echo
	Cfg       config.Provider
	Navigator nav.Navigator
	Modules   []module.Module
}

// New creates a new Server instance with its middleware and modules wired.
func New(cfg config.Provider) *Server {
	navigator := NewNavigator(cfg.GetNavigation())

	e := echo.New()
	e.HideBanner = true
	e.Renderer = rendering.NewUniversalRenderer()
	setupErrorHandling(e)

	e.Use(echomw.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger)

	// Serve the embedded static assets.
	e.StaticFS("/static", echo.MustSubFS(web.FS, "static"))

	return &Server{
		E:         e,
		Cfg:       cfg,
		Navigator: navigator,
		Modules:   app.NewModules(app.Dependencies{Navigator: navigator}),
	}
}

// NewNavigator returns the navigator for the configured navigation mode.
func NewNavigator(mode string) nav.Navigator {
	if mode == config.NavigationAnchors {
		return nav.Anchors{}
	}
	return nav.HTMX{}
}
