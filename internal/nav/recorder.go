package nav

import (
	"sync"

	g "maragu.dev/gomponents"
)

// Recorder wraps a Navigator and remembers each route it was asked for,
// in request order.
type Recorder struct {
	Next Navigator

	mu       sync.Mutex
	requests []Route
}

// NewRecorder returns a Recorder delegating to next. A nil next falls back to
// Anchors.
func NewRecorder(next Navigator) *Recorder {
	if next == nil {
		next = Anchors{}
	}
	return &Recorder{Next: next}
}

func (r *Recorder) RequestNavigation(route Route) g.Node {
	r.mu.Lock()
	r.requests = append(r.requests, route)
	r.mu.Unlock()
	return r.Next.RequestNavigation(route)
}

// Requests returns a copy of the recorded routes.
func (r *Recorder) Requests() []Route {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Route, len(r.requests))
	copy(out, r.requests)
	return out
}
