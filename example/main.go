package main

import (
	"context"
	"fmt"
	"html"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/a-h/templ"
	"github.com/pagemix/pagemix"
	"github.com/rs/zerolog"
)

func main() {
	reg := pagemix.NewRegistry()
	reg.SetLogger(zerolog.New(os.Stderr).With().Timestamp().Logger())
	reg.Renderer = renderPage

	reg.Register("counter", counterPage())

	mux := http.NewServeMux()
	mux.Handle("/", reg.Handler())

	addr := ":8080"
	fmt.Printf("Starting server at http://localhost%s/counter\n", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatal(err)
	}
}

// renderPage is the registry renderer: a minimal HTML view of the merged
// page data.
func renderPage(ctx context.Context, name string, p *pagemix.Page) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		title, _ := p.Data["title"].(string)
		theme, _ := p.Data["theme"].(string)
		if _, err := fmt.Fprintf(w,
			`<!doctype html><html data-theme=%q><head><title>%s</title></head><body>`,
			html.EscapeString(theme), html.EscapeString(title)); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, `<h1>%s</h1><dl>`, html.EscapeString(title)); err != nil {
			return err
		}
		for _, key := range []string{"count", "visits", "lastVisit"} {
			if _, err := fmt.Fprintf(w, `<dt>%s</dt><dd>%v</dd>`,
				html.EscapeString(key), p.Data[key]); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</dl></body></html>`)
		return err
	})
}
