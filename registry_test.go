package pagemix

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/a-h/templ"
	"github.com/rs/zerolog"
)

func TestRegistryRegisterMerges(t *testing.T) {
	reg := NewRegistry()
	p := reg.Register("home", &Page{
		Data:   map[string]any{"title": "Home"},
		Mixins: []*Mixin{{Data: map[string]any{"theme": "light"}}},
	})

	if p.Data["theme"] != "light" {
		t.Errorf("data[theme] = %v, want mixin data merged on Register", p.Data["theme"])
	}

	got, ok := reg.Page("home")
	if !ok || got != p {
		t.Error("Page(home) did not return the registered page")
	}
}

func TestRegistryCollisionPanics(t *testing.T) {
	reg := NewRegistry()
	reg.Register("home", &Page{})

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on name collision")
		}
	}()
	reg.Register("home", &Page{})
}

func TestRegistryNames(t *testing.T) {
	reg := NewRegistry()
	reg.Register("b", &Page{})
	reg.Register("a", &Page{})

	names := reg.Names()
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("Names() = %v, want [a b]", names)
	}
}

func TestRegistryHandlerServesJSON(t *testing.T) {
	reg := NewRegistry()
	reg.Register("inbox", &Page{Data: map[string]any{"unread": 3}})

	req := httptest.NewRequest(http.MethodGet, "/inbox", nil)
	rec := httptest.NewRecorder()
	reg.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Errorf("Content-Type = %q, want JSON", ct)
	}
	if !strings.Contains(rec.Body.String(), `"unread":3`) {
		t.Errorf("body = %q, want merged data", rec.Body.String())
	}
}

func TestRegistryHandlerFiresLifecycle(t *testing.T) {
	recd := &Recorder{}
	reg := NewRegistry()
	reg.Register("inbox", &Page{
		OnLoad: recd.HandlerFunc("load", func(p *Page, args ...any) any {
			if len(args) == 1 {
				if q, ok := args[0].(map[string]any); ok {
					p.Data["folder"] = q["folder"]
				}
			}
			return nil
		}),
		OnShow: recd.Handler("show", nil),
	})

	req := httptest.NewRequest(http.MethodGet, "/inbox?folder=spam", nil)
	rec := httptest.NewRecorder()
	reg.Handler().ServeHTTP(rec, req)

	names := recd.Names()
	if len(names) != 2 || names[0] != "load" || names[1] != "show" {
		t.Fatalf("lifecycle order = %v, want [load show]", names)
	}

	p, _ := reg.Page("inbox")
	if p.Data["folder"] != "spam" {
		t.Errorf("data[folder] = %v, want query argument passed to onLoad", p.Data["folder"])
	}
}

func TestRegistryHandlerRenderer(t *testing.T) {
	reg := NewRegistry()
	reg.Renderer = func(ctx context.Context, name string, p *Page) templ.Component {
		return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			_, err := io.WriteString(w, "<h1>"+name+"</h1>")
			return err
		})
	}
	reg.Register("inbox", &Page{})

	req := httptest.NewRequest(http.MethodGet, "/inbox", nil)
	rec := httptest.NewRecorder()
	reg.Handler().ServeHTTP(rec, req)

	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q, want HTML", ct)
	}
	if rec.Body.String() != "<h1>inbox</h1>" {
		t.Errorf("body = %q, want rendered component", rec.Body.String())
	}
}

func TestRegistryHandlerNotFound(t *testing.T) {
	reg := NewRegistry()

	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	rec := httptest.NewRecorder()
	reg.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestRegistryHandlerMethodNotAllowed(t *testing.T) {
	reg := NewRegistry()
	reg.Register("inbox", &Page{})

	req := httptest.NewRequest(http.MethodPost, "/inbox", nil)
	rec := httptest.NewRecorder()
	reg.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}

func TestRegistryHandlerSerializesPageLifecycle(t *testing.T) {
	reg := NewRegistry()
	reg.Register("inbox", &Page{
		Data: map[string]any{"visits": 0},
		OnShow: func(p *Page, args ...any) any {
			n, _ := p.Data["visits"].(int)
			p.Data["visits"] = n + 1
			return nil
		},
	})

	const workers, perWorker = 8, 25
	h := reg.Handler()

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				rec := httptest.NewRecorder()
				h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/inbox", nil))
			}
		}()
	}
	wg.Wait()

	// Serialized invocation makes the counter exact; lost updates (or a
	// concurrent map write panic) mean requests overlapped on the page.
	p, _ := reg.Page("inbox")
	if got := p.Data["visits"]; got != workers*perWorker {
		t.Errorf("visits = %v, want %d", got, workers*perWorker)
	}
}

func TestRegistrySetLoggerWhileServing(t *testing.T) {
	reg := NewRegistry()
	reg.Register("home", &Page{})
	h := reg.Handler()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			reg.SetLogger(zerolog.Nop())
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/home", nil))
		}
	}()
	wg.Wait()
}

func TestRegistryHandlerShowNeedsVocabularyEntry(t *testing.T) {
	// A vocabulary without onShow gets only its load event per request.
	recd := &Recorder{}
	reg := NewRegistryWith(EventSet{"onBoot", "onWake"})
	reg.Register("p", &Page{
		Methods: map[string]any{
			"onBoot": recd.Handler("boot", nil),
			"onWake": recd.Handler("wake", nil),
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/p", nil)
	rec := httptest.NewRecorder()
	reg.Handler().ServeHTTP(rec, req)

	names := recd.Names()
	if len(names) != 1 || names[0] != "boot" {
		t.Errorf("invocations = %v, want [boot]", names)
	}
}

func TestRegistryCustomVocabulary(t *testing.T) {
	recd := &Recorder{}
	reg := NewRegistryWith(AppEvents)
	reg.Register("app", &Page{
		Methods: map[string]any{
			EventLaunch: recd.Handler("launch", nil),
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/app", nil)
	rec := httptest.NewRecorder()
	reg.Handler().ServeHTTP(rec, req)

	names := recd.Names()
	if len(names) != 1 || names[0] != "launch" {
		t.Errorf("invocations = %v, want [launch]", names)
	}
}
