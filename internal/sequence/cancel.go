package sequence

import "sync"

// CancelSignal is a one-shot broadcast used to interrupt blocking work on
// the sync sequence. Signaling it stops in-progress and future network
// operations inside the engine instance, but does not cancel tasks already
// posted to a runner — those still run and are expected to no-op behind
// their own guards.
type CancelSignal struct {
	once sync.Once
	done chan struct{}
}

// NewCancelSignal returns an unsignaled CancelSignal.
func NewCancelSignal() *CancelSignal {
	return &CancelSignal{done: make(chan struct{})}
}

// Signal fires the broadcast. Subsequent calls are no-ops.
func (s *CancelSignal) Signal() {
	s.once.Do(func() { close(s.done) })
}

// Signaled reports whether Signal has been called.
func (s *CancelSignal) Signaled() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

// Done returns a channel closed once the signal fires, for select loops.
func (s *CancelSignal) Done() <-chan struct{} {
	return s.done
}
