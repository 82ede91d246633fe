package pagemix

// Compose builds one Handler from an ordered list of handlers.
//
// The composed handler applies the list right to left: the last element
// receives the full caller-supplied argument list, and every earlier
// element receives, as its sole argument, the return value of the element
// one position later. The first element's return value is the composed
// handler's return value.
//
// Callers control execution order entirely by pre-arranging the list: to
// run handlers in a given order, pass the list reversed.
//
// Two fast paths are part of the contract: composing zero handlers yields
// the identity (the sole argument is returned unchanged), and composing a
// single handler yields that handler unchanged. Neither is an error.
func Compose(fns ...Handler) Handler {
	switch len(fns) {
	case 0:
		return identity
	case 1:
		return fns[0]
	}
	return func(p *Page, args ...any) any {
		v := fns[len(fns)-1](p, args...)
		for i := len(fns) - 2; i >= 0; i-- {
			v = fns[i](p, v)
		}
		return v
	}
}

func identity(_ *Page, args ...any) any {
	if len(args) == 0 {
		return nil
	}
	return args[0]
}
