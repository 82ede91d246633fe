package main

import (
	"time"

	"github.com/pagemix/pagemix"
)

// trackingMixin counts page shows and stamps the last visit. Shared by
// every page in the app; each page gets its own counter because the merge
// copies the data key into the page's own data map.
var trackingMixin = &pagemix.Mixin{
	Data: map[string]any{
		"visits":    0,
		"lastVisit": "",
	},
	Hooks: map[string]any{
		pagemix.EventShow: pagemix.Handler(func(p *pagemix.Page, args ...any) any {
			if n, ok := p.Data["visits"].(int); ok {
				p.Data["visits"] = n + 1
			}
			p.Data["lastVisit"] = time.Now().Format(time.RFC3339)
			return nil
		}),
	},
}

// themeMixin supplies presentation defaults a page can override by
// defining the key itself.
var themeMixin = &pagemix.Mixin{
	Data: map[string]any{
		"theme": "light",
		"title": "untitled",
	},
	Methods: map[string]any{
		"toggleTheme": pagemix.Handler(func(p *pagemix.Page, args ...any) any {
			if p.Data["theme"] == "light" {
				p.Data["theme"] = "dark"
			} else {
				p.Data["theme"] = "light"
			}
			return p.Data["theme"]
		}),
	},
}

// counterPage defines its own title (beating themeMixin's default) and a
// load handler that seeds the counter from the query string.
func counterPage() *pagemix.Page {
	return &pagemix.Page{
		Data: map[string]any{
			"title": "Counter",
			"count": 0,
		},
		Mixins: []*pagemix.Mixin{trackingMixin, themeMixin},
		OnLoad: func(p *pagemix.Page, args ...any) any {
			if len(args) == 0 {
				return nil
			}
			if q, ok := args[0].(map[string]any); ok {
				if s, ok := q["start"].(string); ok && s != "" {
					p.Data["count"] = len(s) // toy seed: length of the start param
				}
			}
			return nil
		},
	}
}
