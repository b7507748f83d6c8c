// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package sequence provides the cross-sequence plumbing of the sync engine:
// serial task runners, liveness tokens for at-most-once callback delivery,
// and a one-shot cancellation signal.
//
// The engine runs on exactly two cooperating sequences — the frontend
// sequence owning the facade and the sync sequence owning the backend. No
// mutable state is ever shared between them; all interaction is one-way
// task posting of value copies, guarded by liveness tokens on the receiving
// side.
package sequence

import (
	"sync"

	"github.com/MKhiriev/go-sync-engine/internal/logger"
)

// Runner is a named serial executor: one goroutine draining a FIFO queue.
// Post never blocks; the queue is unbounded. Tasks posted from the runner's
// own goroutine are queued behind the currently running task, which is what
// gives same-runner posting its ordering guarantee (a task posted before
// another runs before it).
type Runner struct {
	name string
	log  *logger.Logger

	mu      sync.Mutex
	cond    *sync.Cond
	queue   []func()
	stopped bool

	wg sync.WaitGroup
}

// NewRunner creates a runner and starts its goroutine.
func NewRunner(name string, log *logger.Logger) *Runner {
	r := &Runner{name: name, log: log}
	r.cond = sync.NewCond(&r.mu)
	r.wg.Add(1)
	go r.loop()
	return r
}

// Name returns the runner's label, used in log fields.
func (r *Runner) Name() string {
	return r.name
}

// Post enqueues task for execution. It returns false (and drops the task)
// if the runner has been stopped.
func (r *Runner) Post(task func()) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.stopped {
		r.log.Debug().Str("runner", r.name).Msg("task posted to stopped runner, dropping")
		return false
	}

	r.queue = append(r.queue, task)
	r.cond.Signal()
	return true
}

// Stop stops accepting new tasks. Tasks already queued still run; the
// goroutine exits once the queue drains. Safe to call more than once.
func (r *Runner) Stop() {
	r.mu.Lock()
	r.stopped = true
	r.cond.Signal()
	r.mu.Unlock()
}

// Join blocks until the runner goroutine has exited. Callers must Stop the
// runner first (directly or via a posted task), otherwise Join never
// returns.
func (r *Runner) Join() {
	r.wg.Wait()
}

func (r *Runner) loop() {
	defer r.wg.Done()

	for {
		r.mu.Lock()
		for len(r.queue) == 0 && !r.stopped {
			r.cond.Wait()
		}
		if len(r.queue) == 0 {
			r.mu.Unlock()
			return
		}
		task := r.queue[0]
		r.queue = r.queue[1:]
		r.mu.Unlock()

		task()
	}
}
