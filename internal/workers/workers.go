// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

// Workers runs and stops a fixed set of workers as one.
type Workers struct {
	workers []Worker
}

// NewWorkers groups ws. Order matters: both Run and Stop walk the list
// front to back, so a worker that feeds another should be listed first.
func NewWorkers(ws ...Worker) *Workers {
	return &Workers{workers: ws}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Stop stops every worker in list order, waiting for each before moving
// to the next.
func (w *Workers) Stop() {
	for _, worker := range w.workers {
		worker.Stop()
	}
}
