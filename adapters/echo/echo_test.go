package pagemixecho

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pagemix/pagemix"
)

func TestMount(t *testing.T) {
	e := echo.New()
	reg := Mount(e)

	if reg == nil {
		t.Fatal("Mount returned nil registry")
	}
}

func TestMountWithPath(t *testing.T) {
	e := echo.New()
	reg := Mount(e, WithPath("/p/"))

	reg.Register("home", &pagemix.Page{
		Data: map[string]any{"title": "Home"},
	})

	req := httptest.NewRequest(http.MethodGet, "/p/home", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), "Home") {
		t.Errorf("body %q missing page data", rec.Body.String())
	}
}

func TestMountGroup(t *testing.T) {
	e := echo.New()
	g := e.Group("/app")
	reg := MountGroup(g)

	reg.Register("inbox", &pagemix.Page{
		Data: map[string]any{"unread": 3},
	})

	req := httptest.NewRequest(http.MethodGet, "/app/pages/inbox", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestMountWithEvents(t *testing.T) {
	e := echo.New()
	reg := Mount(e, WithEvents(pagemix.AppEvents))

	var launched bool
	reg.Register("app", &pagemix.Page{
		Methods: map[string]any{
			pagemix.EventLaunch: pagemix.Handler(func(p *pagemix.Page, args ...any) any {
				launched = true
				return nil
			}),
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/pages/app", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if !launched {
		t.Error("onLaunch did not fire through the mounted handler")
	}
}

func TestMountUnknownPage(t *testing.T) {
	e := echo.New()
	Mount(e)

	req := httptest.NewRequest(http.MethodGet, "/pages/missing", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
