package workers

import "github.com/MKhiriev/go-sync-engine/internal/sequence"

// Workers aggregates background workers under one lifecycle.
type Workers struct {
	workers []Worker
}

// New builds an aggregate over the given workers. Registration order
// matters: Run starts workers in order, Shutdown stops them in reverse, so
// a worker registered after another may depend on it being alive.
func New(ws ...Worker) *Workers {
	return &Workers{workers: ws}
}

// Run starts every worker in registration order.
func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Shutdown stops workers in reverse registration order and blocks until all
// of them have drained.
func (w *Workers) Shutdown() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Shutdown()
	}
}

// SequenceWorker supervises one sequence runner. The runner's goroutine is
// already live from construction, so Run has nothing left to start;
// Shutdown stops the runner and waits for its queue to drain.
type SequenceWorker struct {
	runner *sequence.Runner
}

// NewSequenceWorker wraps an already-running sequence runner.
func NewSequenceWorker(runner *sequence.Runner) *SequenceWorker {
	return &SequenceWorker{runner: runner}
}

// Runner exposes the supervised runner for wiring.
func (w *SequenceWorker) Runner() *sequence.Runner {
	return w.runner
}

func (w *SequenceWorker) Run() {}

// Shutdown stops the runner; queued tasks still execute before it exits.
func (w *SequenceWorker) Shutdown() {
	w.runner.Stop()
	w.runner.Join()
}
