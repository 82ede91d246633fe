package pagemix

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"

	"github.com/a-h/templ"
	"github.com/rs/zerolog"
)

// Registry is a page-registration surface for hosts that want merged pages
// served directly. Register merges a page and stores it under a route
// name; Handler exposes the pages over HTTP, firing the load sequence and
// show event on each request.
//
// Production host frameworks typically have their own registration entry
// point and consume the merged *Page directly; the registry exists for
// demos, tests, and small self-hosted setups.
type Registry struct {
	mu     sync.RWMutex
	events EventSet
	pages  map[string]*Page
	locks  map[string]*sync.Mutex
	log    zerolog.Logger

	// Renderer produces the HTML body served for a page. When nil, the
	// handler writes the page's merged data as JSON.
	Renderer func(ctx context.Context, name string, p *Page) templ.Component

	// OnError is called when serving a page fails.
	// Customize this to handle errors appropriately for your application.
	OnError func(http.ResponseWriter, *http.Request, error)
}

// NewRegistry creates a registry using the default page vocabulary.
func NewRegistry() *Registry {
	return NewRegistryWith(PageEvents)
}

// NewRegistryWith creates a registry that merges with a caller-supplied
// vocabulary.
func NewRegistryWith(events EventSet) *Registry {
	reg := &Registry{
		events: events,
		pages:  make(map[string]*Page),
		locks:  make(map[string]*sync.Mutex),
		log:    zerolog.Nop(),
	}

	// Default error handler
	reg.OnError = func(w http.ResponseWriter, r *http.Request, err error) {
		if IsNotFound(err) {
			http.Error(w, "Not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Internal error", http.StatusInternalServerError)
	}

	return reg
}

// SetLogger attaches a logger for registration and request diagnostics.
// The default is a no-op logger.
func (reg *Registry) SetLogger(log zerolog.Logger) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	reg.log = log
}

// Register merges the page with the registry's vocabulary and stores it
// under name. Panics on a name collision, which is a wiring mistake that
// should fail at startup rather than surface per-request.
func (reg *Registry) Register(name string, p *Page) *Page {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	if _, exists := reg.pages[name]; exists {
		panic(fmt.Sprintf("pagemix: page name collision for %q", name))
	}

	merged := MergeWith(p, reg.events)
	reg.pages[name] = merged
	reg.locks[name] = &sync.Mutex{}
	reg.log.Debug().
		Str("page", name).
		Int("mixins", len(p.Mixins)).
		Int("data_keys", len(merged.Data)).
		Msg("page registered")
	return merged
}

// Page returns the merged page registered under name.
func (reg *Registry) Page(name string) (*Page, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	p, ok := reg.pages[name]
	return p, ok
}

// Names returns the registered page names in sorted order.
func (reg *Registry) Names() []string {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	names := make([]string, 0, len(reg.pages))
	for name := range reg.pages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Handler returns the HTTP handler for registered pages.
//
// GET /<name> fires the page's load sequence with the query parameters as
// the call argument, then the show event, then renders via Renderer (or a
// JSON dump of the merged data when no Renderer is set). The show step
// fires only for vocabularies that contain onShow; custom vocabularies
// without it get just their load event.
//
// Lifecycle handlers routinely mutate the page's Data map, and the merged
// page itself carries no synchronization, so the handler serializes
// requests per page: invocation and rendering run under a per-page lock.
// Requests for different pages proceed concurrently.
func (reg *Registry) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		name := strings.Trim(r.URL.Path, "/")

		reg.mu.RLock()
		p, ok := reg.pages[name]
		lock := reg.locks[name]
		events := reg.events
		log := reg.log
		reg.mu.RUnlock()

		if !ok {
			reg.OnError(w, r, ErrPageNotFound)
			return
		}

		query := make(map[string]any, len(r.URL.Query()))
		for k, vs := range r.URL.Query() {
			if len(vs) > 0 {
				query[k] = vs[0]
			}
		}

		lock.Lock()
		defer lock.Unlock()

		p.Invoke(events.LoadEvent(), query)
		if load := events.LoadEvent(); load != EventShow && events.Contains(EventShow) {
			p.Invoke(EventShow)
		}

		log.Debug().Str("page", name).Msg("page served")

		if reg.Renderer != nil {
			if err := Render(w, r, reg.Renderer(r.Context(), name, p)); err != nil {
				reg.OnError(w, r, err)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		if err := json.NewEncoder(w).Encode(p.Data); err != nil {
			reg.OnError(w, r, err)
		}
	})
}
