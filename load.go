package pagemix

// loadSequence is the fixed three-step chain installed under the
// vocabulary's load event: before hook, the page's native load handler,
// then the after hook. Unlike the generic fan-out, every step receives the
// caller's original arguments; nothing is threaded between steps.
type loadSequence struct {
	before Handler
	native Handler
	after  Handler
}

// run executes the chain. The native handler's return value is passed
// through for hosts that read it; the hooks' return values are discarded.
func (s *loadSequence) run(p *Page, args ...any) any {
	s.before(p, args...)
	v := s.native(p, args...)
	s.after(p, args...)
	return v
}

// installLoadSequence replaces the page's load slot with the fixed chain.
// The native step is the page's original load handler, or a no-op when the
// page defined none. Mixin contributions under the load event name were
// never collected, so they cannot appear here.
func installLoadSequence(p *Page, events EventSet) {
	load := events.LoadEvent()
	if load == "" {
		return
	}
	s := &loadSequence{
		before: p.OnBeforeLoad,
		native: p.handler(load),
		after:  p.OnAfterLoad,
	}
	if s.before == nil {
		s.before = noop
	}
	if s.native == nil {
		s.native = noop
	}
	if s.after == nil {
		s.after = noop
	}
	p.install(load, s.run)
}
