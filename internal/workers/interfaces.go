// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface, a Workers aggregate that allows
// running multiple workers in a unified way, and Queue, a single-consumer
// FIFO task runner.
package workers

// Worker is the interface that must be implemented by any background worker.
//
// Run starts the worker's execution and returns once the worker is
// running; implementations spawn goroutines internally. Stop blocks until
// the worker has fully exited.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run()  { go w.loop() }
//	func (w *MyWorker) Stop() { w.cancel(); w.wg.Wait() }
type Worker interface {
	Run()
	Stop()
}
