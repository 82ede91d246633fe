package pagemix

import "sync"

// RecordedCall is one handler invocation captured by a Recorder.
type RecordedCall struct {
	Name string
	Args []any
	Page *Page
}

// Recorder captures handler invocations for tests.
//
// Wrap handlers before wiring them into mixins or pages, then assert on
// the recorded order and arguments after firing a merged slot:
//
//	rec := &pagemix.Recorder{}
//	m := &pagemix.Mixin{Hooks: map[string]any{
//	    pagemix.EventShow: rec.Handler("m.onShow", "seen"),
//	}}
//	pagemix.Merge(page)
//	page.Invoke(pagemix.EventShow, "hello")
//	// rec.Names() == []string{"m.onShow", ...}
//
// Recorder is safe for concurrent use, though merged dispatch itself is
// synchronous.
type Recorder struct {
	mu    sync.Mutex
	calls []RecordedCall
}

// Handler returns a Handler that records its invocation under name and
// returns ret.
func (rec *Recorder) Handler(name string, ret any) Handler {
	return func(p *Page, args ...any) any {
		rec.record(name, p, args)
		return ret
	}
}

// HandlerFunc returns a Handler that records its invocation under name and
// then delegates to fn.
func (rec *Recorder) HandlerFunc(name string, fn Handler) Handler {
	return func(p *Page, args ...any) any {
		rec.record(name, p, args)
		return fn(p, args...)
	}
}

func (rec *Recorder) record(name string, p *Page, args []any) {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	rec.calls = append(rec.calls, RecordedCall{Name: name, Args: args, Page: p})
}

// Calls returns a copy of the recorded invocations in order.
func (rec *Recorder) Calls() []RecordedCall {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	out := make([]RecordedCall, len(rec.calls))
	copy(out, rec.calls)
	return out
}

// Names returns the recorded invocation names in order.
func (rec *Recorder) Names() []string {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	names := make([]string, len(rec.calls))
	for i, c := range rec.calls {
		names[i] = c.Name
	}
	return names
}

// Reset discards all recorded invocations.
func (rec *Recorder) Reset() {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	rec.calls = nil
}
