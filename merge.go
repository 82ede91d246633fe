package pagemix

// Merge folds the page's ordered mixin list into the page itself using the
// default page vocabulary. The page is mutated in place and returned;
// mixins are never mutated.
//
// After Merge the page exposes a fully merged Data mapping, an onLoad slot
// running the fixed before/native/after sequence, a fan-out dispatcher for
// every other lifecycle event at least one mixin contributed to, and
// first-definer-wins merged methods for everything else.
func Merge(p *Page) *Page {
	return MergeWith(p, PageEvents)
}

// MergeWith merges using a caller-supplied lifecycle vocabulary. Use this
// for app-level configurations (AppEvents) or host frameworks with their
// own event vocabulary.
func MergeWith(p *Page, events EventSet) *Page {
	if p == nil {
		return nil
	}
	if p.Data == nil {
		p.Data = make(map[string]any)
	}

	col := collect(p.Mixins, events)

	// The load hooks default before the generic method merge runs. This
	// ordering is what makes mixin-contributed onBeforeLoad/onAfterLoad
	// inert: by the time their contributions are considered, the
	// page-level slot is already non-empty.
	if p.OnBeforeLoad == nil {
		p.OnBeforeLoad = noop
	}
	if p.OnAfterLoad == nil {
		p.OnAfterLoad = noop
	}

	mergeData(p.Data, col.data)
	mergeMethods(p, col, events)
	installLoadSequence(p, events)
	return p
}

// mergeData writes each mixin-contributed key into the page data only when
// the page does not already define it. Map presence is the "defined" test:
// a key set to nil, false, zero, or "" still wins over a mixin value.
// Returns the page mapping, now the final merged data.
func mergeData(page, mixin map[string]any) map[string]any {
	for k, v := range mixin {
		if _, ok := page[k]; !ok {
			page[k] = v
		}
	}
	return page
}

// mergeMethods folds the collected accumulators into the page.
//
// Ordinary methods install first-definer-wins: a name the page already
// defines keeps the page's value and the mixin contribution is discarded.
//
// Recognized lifecycle events install a fan-out dispatcher over the
// event's ordered hook list, with the page's own original handler (when
// present) appended as the temporal last handler. The dispatcher replaces
// whatever is in the slot. The page's original handlers are captured up
// front so a mixin method installed under an event name can never pose as
// a page-defined handler.
func mergeMethods(p *Page, col collected, events EventSet) *Page {
	own := make(map[string]Handler, len(events))
	for _, name := range events {
		own[name] = p.handler(name)
	}

	for name, h := range col.methods {
		if p.defines(name) {
			continue
		}
		p.install(name, h)
	}

	for _, name := range events {
		hs := col.hooks[name]
		if len(hs) == 0 {
			continue
		}
		if h := own[name]; h != nil {
			hs = append(hs, h)
		}
		p.install(name, dispatch(hs))
	}

	return p
}

// dispatch builds the fan-out dispatcher for one lifecycle event.
//
// Invocation contract: handlers run in list order; the first receives the
// caller's original argument list, every later one receives the previous
// handler's return value as its sole argument, and the last return value
// is the dispatcher's result. Each handler is invoked with the page the
// dispatcher was called on.
//
// The contract is implemented directly rather than by reversing the list
// into Compose; the observable behavior is identical.
func dispatch(hs []Handler) Handler {
	return func(p *Page, args ...any) any {
		var v any
		for i, h := range hs {
			if i == 0 {
				v = h(p, args...)
			} else {
				v = h(p, v)
			}
		}
		return v
	}
}
