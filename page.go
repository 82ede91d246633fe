package pagemix

// Page is a page configuration: the object ultimately handed to the host
// UI-page framework. The known lifecycle slots are struct fields; anything
// else lives in the open Methods mapping.
//
// Merge mutates the page in place and returns it. After the merge the host
// framework owns the page and may invoke its lifecycle slots arbitrarily
// many times.
type Page struct {
	// Data is the page's state. After Merge it carries every key
	// contributed by any mixin plus every key the page itself defined,
	// with page-level values taking precedence.
	Data map[string]any

	// Mixins is the ordered mixin list consumed by Merge. Order matters:
	// it fixes both data precedence among mixins and lifecycle fan-out
	// order.
	Mixins []*Mixin

	// Methods holds arbitrary named methods, plus any lifecycle slots of
	// vocabularies that extend beyond the known fields below. Values the
	// page defines here are never overwritten by mixins.
	Methods map[string]any

	// Known lifecycle slots of the default page vocabulary. After Merge,
	// OnLoad runs the fixed before/native/after sequence and every other
	// slot a mixin contributed to holds a fan-out dispatcher.
	OnLoad            Handler
	OnReady           Handler
	OnShow            Handler
	OnHide            Handler
	OnUnload          Handler
	OnPullDownRefresh Handler
	OnReachBottom     Handler
	OnShareAppMessage Handler

	// Load sequence hooks. Defaulted to no-ops by Merge when unset;
	// because the defaults land before the generic method merge runs,
	// mixin contributions under these names never take effect.
	OnBeforeLoad Handler
	OnAfterLoad  Handler
}

// Invoke calls the handler installed under name, passing the page as the
// receiver. Returns nil when nothing callable is installed. This is how a
// host framework fires merged lifecycle slots and methods.
func (p *Page) Invoke(name string, args ...any) any {
	h := p.handler(name)
	if h == nil {
		return nil
	}
	return h(p, args...)
}

// handler returns the callable installed under name: the known slot when
// name has one, otherwise a coerced Methods entry.
func (p *Page) handler(name string) Handler {
	if p.hasSlot(name) {
		return p.slot(name)
	}
	return asHandler(p.Methods[name])
}

// defines reports whether the page already carries a non-empty value under
// name. Used by the generic method merge: a defined name is never
// overwritten by a mixin contribution.
func (p *Page) defines(name string) bool {
	if p.hasSlot(name) {
		return p.slot(name) != nil
	}
	v, ok := p.Methods[name]
	return ok && v != nil
}

// install assigns a merged handler under name: into the known slot when
// name has one, otherwise into Methods.
func (p *Page) install(name string, h Handler) {
	if p.hasSlot(name) {
		p.setSlot(name, h)
		return
	}
	if p.Methods == nil {
		p.Methods = make(map[string]any)
	}
	p.Methods[name] = h
}

func (p *Page) hasSlot(name string) bool {
	switch name {
	case EventLoad, EventReady, EventShow, EventHide, EventUnload,
		EventPullDownRefresh, EventReachBottom, EventShareAppMessage,
		EventBeforeLoad, EventAfterLoad:
		return true
	}
	return false
}

func (p *Page) slot(name string) Handler {
	switch name {
	case EventLoad:
		return p.OnLoad
	case EventReady:
		return p.OnReady
	case EventShow:
		return p.OnShow
	case EventHide:
		return p.OnHide
	case EventUnload:
		return p.OnUnload
	case EventPullDownRefresh:
		return p.OnPullDownRefresh
	case EventReachBottom:
		return p.OnReachBottom
	case EventShareAppMessage:
		return p.OnShareAppMessage
	case EventBeforeLoad:
		return p.OnBeforeLoad
	case EventAfterLoad:
		return p.OnAfterLoad
	}
	return nil
}

func (p *Page) setSlot(name string, h Handler) {
	switch name {
	case EventLoad:
		p.OnLoad = h
	case EventReady:
		p.OnReady = h
	case EventShow:
		p.OnShow = h
	case EventHide:
		p.OnHide = h
	case EventUnload:
		p.OnUnload = h
	case EventPullDownRefresh:
		p.OnPullDownRefresh = h
	case EventReachBottom:
		p.OnReachBottom = h
	case EventShareAppMessage:
		p.OnShareAppMessage = h
	case EventBeforeLoad:
		p.OnBeforeLoad = h
	case EventAfterLoad:
		p.OnAfterLoad = h
	}
}
