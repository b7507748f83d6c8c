package sequence

import "sync/atomic"

// Token is a liveness token owned by the receiving end of a cross-sequence
// handle. Invalidating it drops every not-yet-executed callback that was
// posted through a Handle carrying it.
type Token struct {
	dead atomic.Bool
}

// NewToken returns a live token.
func NewToken() *Token {
	return &Token{}
}

// Invalidate marks the token dead. Callbacks already queued behind it will
// be skipped at execution time; callbacks already running are unaffected.
func (t *Token) Invalidate() {
	t.dead.Store(true)
}

// Alive reports whether the token is still live.
func (t *Token) Alive() bool {
	return !t.dead.Load()
}

// Handle pairs a target runner with the liveness token of the recipient
// living on that runner. Calls posted through a Handle are delivered
// at most once: they are dropped if the token dies before they execute.
//
// The zero Handle is valid and drops every call, which is how a receiver
// "resets" a handle it no longer wants to be reachable through.
type Handle struct {
	runner *Runner
	token  *Token
}

// NewHandle builds a handle delivering onto runner, guarded by token.
func NewHandle(runner *Runner, token *Token) Handle {
	return Handle{runner: runner, token: token}
}

// Call posts fn to the handle's runner. The liveness check happens on the
// receiving sequence right before fn runs, not at post time, so a token
// invalidated concurrently still suppresses delivery.
func (h Handle) Call(fn func()) {
	if h.runner == nil {
		return
	}
	token := h.token
	h.runner.Post(func() {
		if token != nil && !token.Alive() {
			return
		}
		fn()
	})
}

// Valid reports whether the handle still points anywhere.
func (h Handle) Valid() bool {
	return h.runner != nil
}
