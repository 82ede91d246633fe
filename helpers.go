package pagemix

import (
	"net/http"

	"github.com/a-h/templ"
)

// Render writes a templ component to the HTTP response.
//
// Sets Content-Type to text/html and renders the component using the
// request's context. The Registry handler uses this for pages with a
// Renderer; hosts embedding pagemix in their own routing can use it
// directly.
func Render(w http.ResponseWriter, r *http.Request, component templ.Component) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return component.Render(r.Context(), w)
}

// IsLifecycleEvent reports whether name belongs to the default page
// vocabulary.
func IsLifecycleEvent(name string) bool {
	return PageEvents.Contains(name)
}
