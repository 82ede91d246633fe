package pagemix

// collected is the outcome of one walk over a page's mixin list: the
// merged mixin data, the ordinary-method accumulator, and the per-event
// ordered hook lists.
type collected struct {
	data    map[string]any
	methods map[string]Handler
	hooks   map[string][]Handler
}

// collect walks the ordered mixin list once.
//
// Data pass: every mixin's data keys are copied into one accumulator;
// later mixins overwrite earlier ones on collision.
//
// Method pass: callable Methods entries land in the ordinary accumulator
// (later mixins overwrite earlier ones; precedence relative to the page is
// resolved later in mergeMethods), and callable Hooks entries under
// recognized event names append to that event's ordered list. The
// vocabulary's load event is never collected through either path.
func collect(mixins []*Mixin, events EventSet) collected {
	c := collected{
		data:    make(map[string]any),
		methods: make(map[string]Handler),
		hooks:   make(map[string][]Handler),
	}
	load := events.LoadEvent()

	for _, m := range mixins {
		if m == nil {
			continue
		}
		for k, v := range m.Data {
			c.data[k] = v
		}
	}

	for _, m := range mixins {
		if m == nil {
			continue
		}
		for k, v := range m.Methods {
			if k == load {
				continue
			}
			// A list value contributes its elements in order, so the
			// last callable wins, matching the cross-mixin rule.
			for _, h := range asHandlers(v) {
				c.methods[k] = h
			}
		}
		for _, name := range events {
			if name == load {
				continue
			}
			if hs := asHandlers(m.Hooks[name]); len(hs) > 0 {
				c.hooks[name] = append(c.hooks[name], hs...)
			}
		}
	}

	return c
}
