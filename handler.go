package pagemix

// Handler is the callable shape the merge engine traffics in.
//
// The explicit page parameter is the engine's receiver binding: whenever a
// merged method or lifecycle dispatcher invokes a handler, it passes the
// page instance the call was made on. The variadic args carry whatever the
// host framework supplied; within a lifecycle fan-out only the first
// handler sees them, every later handler receives the previous handler's
// return value as its sole argument.
type Handler func(p *Page, args ...any) any

// noop is the default for unset load hooks.
func noop(*Page, ...any) any { return nil }

// asHandler coerces a merge candidate to a Handler. Returns nil when the
// value is not callable in the engine's sense; callers skip nil silently,
// which is the whole of the engine's shape validation.
func asHandler(v any) Handler {
	switch h := v.(type) {
	case Handler:
		return h
	case func(*Page, ...any) any:
		return h
	case func(*Page, ...any):
		return func(p *Page, args ...any) any {
			h(p, args...)
			return nil
		}
	case func(*Page):
		return func(p *Page, _ ...any) any {
			h(p)
			return nil
		}
	}
	return nil
}

// asHandlers coerces a merge candidate to an ordered handler list. A single
// callable yields a one-element list; []Handler and []any values contribute
// each callable element in order; everything else yields nil.
func asHandlers(v any) []Handler {
	switch hs := v.(type) {
	case nil:
		return nil
	case []Handler:
		out := make([]Handler, 0, len(hs))
		for _, h := range hs {
			if h != nil {
				out = append(out, h)
			}
		}
		return out
	case []any:
		out := make([]Handler, 0, len(hs))
		for _, e := range hs {
			if h := asHandler(e); h != nil {
				out = append(out, h)
			}
		}
		return out
	}
	if h := asHandler(v); h != nil {
		return []Handler{h}
	}
	return nil
}
