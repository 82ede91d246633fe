package pagemix

// Mixin is a reusable bundle of page data, methods, and lifecycle hooks
// meant to be merged into one or more pages.
//
// All fields are optional; missing ones default to empty. Mixins are
// immutable inputs: the engine reads them and never writes back, so one
// mixin value can safely back any number of pages.
//
//	var tracking = &pagemix.Mixin{
//	    Data: map[string]any{"visits": 0},
//	    Hooks: map[string]any{
//	        pagemix.EventShow: pagemix.Handler(recordVisit),
//	    },
//	}
type Mixin struct {
	// Data is shared state contributed to the page. On key collisions the
	// page's own value wins; among mixins the later mixin wins.
	Data map[string]any

	// Methods maps method names to callables, or to ordered lists of
	// callables. Non-callable values are skipped. Entries named after the
	// vocabulary's load event are ignored.
	Methods map[string]any

	// Hooks maps recognized lifecycle event names to handler
	// contributions (a callable or an ordered list of callables). Hook
	// contributions fan out: they accumulate across mixins instead of
	// overwriting. An entry under the load event name is ignored.
	Hooks map[string]any
}
