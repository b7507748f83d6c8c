// Package workers supervises the long-lived background components of the
// sync engine process: the sequence runners and anything else with a
// run/shutdown lifecycle. It defines the Worker interface and a Workers
// aggregate that starts and stops a set of workers in a unified way.
package workers

// Worker is a supervised background component.
//
// Run starts the worker's execution and must not block; implementations are
// expected to spawn goroutines internally. Shutdown stops the worker and
// blocks until its work has fully drained.
type Worker interface {
	Run()
	Shutdown()
}
