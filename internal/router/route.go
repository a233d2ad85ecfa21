package router

import "sync"

// ActivatedRoute is the parameter stream of the route currently shown.
//
// The shell emits a Params value on every navigation into the route; the
// screen receives them from Params(). Emissions are coalesced: a value that
// has not been received yet is replaced by a newer one, so a slow reader only
// ever sees the latest parameters. Close ends the stream.
type ActivatedRoute struct {
	mu       sync.Mutex
	ch       chan Params
	snapshot Params
	closed   bool
}

// NewActivatedRoute returns a stream that has already emitted initial.
func NewActivatedRoute(initial Params) *ActivatedRoute {
	a := &ActivatedRoute{ch: make(chan Params, 1)}
	a.Emit(initial)
	return a
}

// Params returns the receive side of the stream. It is closed by Close.
func (a *ActivatedRoute) Params() <-chan Params {
	return a.ch
}

// Emit publishes p, replacing any value not yet received. It returns false
// once the stream is closed.
func (a *ActivatedRoute) Emit(p Params) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return false
	}

	p = clone(p)
	a.snapshot = p

	// Only Emit sends, under mu, so after draining the buffer the send cannot block.
	select {
	case <-a.ch:
	default:
	}
	a.ch <- p
	return true
}

// Snapshot returns the most recently emitted parameters.
func (a *ActivatedRoute) Snapshot() Params {
	a.mu.Lock()
	defer a.mu.Unlock()
	return clone(a.snapshot)
}

// Close ends the stream. It is safe to call more than once.
func (a *ActivatedRoute) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return
	}
	a.closed = true
	close(a.ch)
}

// Closed reports whether Close has been called.
func (a *ActivatedRoute) Closed() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.closed
}

func clone(p Params) Params {
	if p == nil {
		return Params{}
	}
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}
