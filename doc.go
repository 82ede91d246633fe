// Package pagemix merges ordered lists of reusable mixins into page
// configurations for UI-page frameworks that drive pages through named
// lifecycle callbacks.
//
// A mixin is a bundle of shared state, methods, and lifecycle hooks. Pages
// list their mixins in order; Merge folds the list into the page and returns
// the same page, ready to hand to the host framework's page-registration
// entry point.
//
//	page := &pagemix.Page{
//	    Data:   map[string]any{"title": "Inbox"},
//	    Mixins: []*pagemix.Mixin{tracking, pagination},
//	    OnShow: refresh,
//	}
//	pagemix.Merge(page)
//
// # Merge Rules
//
// Data merges with page precedence: a key the page defines always keeps the
// page's value. Among mixins, the later mixin in the list wins.
//
// Ordinary methods merge first-definer-wins: the page's own definition beats
// any mixin, and the earliest-applicable mixin beats later ones.
//
// Recognized lifecycle names (onReady, onShow, onHide, onUnload, and the
// rest of the page vocabulary) fan out instead of overwriting. Every mixin
// handler runs in mixin-list order, then the page's own handler runs last.
// The first handler receives the framework-supplied arguments; each later
// handler receives the previous handler's return value as its sole argument.
//
// onLoad never fans out. Merge installs a fixed three-step chain in its
// place: the page's onBeforeLoad hook, the page's original onLoad handler,
// then the onAfterLoad hook, each invoked with the original call arguments.
// Mixin entries named onLoad are ignored entirely.
//
// # Handlers
//
// Handlers receive the page instance explicitly:
//
//	func refresh(p *pagemix.Page, args ...any) any {
//	    p.Data["refreshedAt"] = time.Now()
//	    return nil
//	}
//
// The engine is permissive: values that are not callable are silently
// skipped, and missing data, methods, or mixins default to empty.
//
// # Vocabularies
//
// The recognized lifecycle names are an injected EventSet, not hidden
// globals. PageEvents is the default; AppEvents covers app-level
// configurations; MergeWith accepts any vocabulary, including ones loaded
// from TOML files via LoadVocabulary.
//
// # Hosting
//
// The Registry is a minimal registration surface for hosts that want merged
// pages served directly: it merges on Register, panics on name collisions,
// and exposes an http.Handler that fires the page lifecycle and renders via
// templ. Production frameworks typically bypass it and consume the merged
// Page directly.
package pagemix
