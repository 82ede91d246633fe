// Package pagemixecho provides Echo framework integration for pagemix
// pages.
//
// Mount a page registry onto an Echo instance or group:
//
//	e := echo.New()
//	reg := pagemixecho.Mount(e)
//	reg.Register("inbox", inboxPage)
//
// Or mount on a group with middleware:
//
//	g := e.Group("/app", authMiddleware)
//	reg := pagemixecho.MountGroup(g)
//	reg.Register("inbox", inboxPage)
package pagemixecho

import (
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/pagemix/pagemix"
)

// Option configures the Mount and MountGroup functions.
type Option func(*options)

type options struct {
	path   string
	events pagemix.EventSet
}

// WithPath sets the URL path prefix for page routes.
// Defaults to "/pages/".
func WithPath(path string) Option {
	return func(o *options) {
		o.path = path
	}
}

// WithEvents sets the lifecycle vocabulary the registry merges with.
// Defaults to pagemix.PageEvents.
func WithEvents(events pagemix.EventSet) Option {
	return func(o *options) {
		o.events = events
	}
}

// Mount creates a registry and mounts the page handler on an Echo
// instance.
//
//	e := echo.New()
//	reg := pagemixecho.Mount(e)
//	reg.Register("inbox", inboxPage)
func Mount(e *echo.Echo, opts ...Option) *pagemix.Registry {
	reg := newRegistry(opts)
	e.GET(reg.path+"*", echo.WrapHandler(reg.stripped()))
	return reg.Registry
}

// MountGroup creates a registry and mounts the page handler on an Echo
// group. This allows pages to share middleware with the group (auth,
// logging, etc.).
//
//	g := e.Group("/app", authMiddleware)
//	reg := pagemixecho.MountGroup(g)
//	reg.Register("inbox", inboxPage)
func MountGroup(g *echo.Group, opts ...Option) *pagemix.Registry {
	reg := newRegistry(opts)
	g.GET(reg.path+"*", echo.WrapHandler(reg.stripped()))
	return reg.Registry
}

type mountedRegistry struct {
	*pagemix.Registry
	path string
}

// stripped removes the mount prefix so the registry sees bare page names.
func (reg *mountedRegistry) stripped() http.Handler {
	prefix := strings.TrimSuffix(reg.path, "/")
	if prefix == "" {
		return reg.Handler()
	}
	return http.StripPrefix(prefix, reg.Handler())
}

func newRegistry(opts []Option) *mountedRegistry {
	o := &options{path: "/pages/", events: pagemix.PageEvents}
	for _, opt := range opts {
		opt(o)
	}

	reg := pagemix.NewRegistryWith(o.events)
	return &mountedRegistry{Registry: reg, path: o.path}
}

// Render writes a templ component to the Echo response.
//
//	func handler(c echo.Context) error {
//	    return pagemixecho.Render(c, myTemplate())
//	}
func Render(c echo.Context, component templ.Component) error {
	c.Response().Header().Set("Content-Type", "text/html; charset=utf-8")
	return component.Render(c.Request().Context(), c.Response())
}
