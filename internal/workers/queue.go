// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"sync"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// Queue is an unbounded FIFO of tasks executed one at a time by a single
// goroutine. Tasks submitted from any goroutine run in submission order and
// never overlap, so state touched only from tasks needs no further locking.
//
// Every accepted task runs exactly once: Stop drains what is already queued
// before returning.
type Queue struct {
	name string
	log  *logger.Logger

	mu      sync.Mutex
	cond    *sync.Cond
	tasks   []func()
	closed  bool
	started bool

	wg sync.WaitGroup
}

var _ Worker = (*Queue)(nil)

// NewQueue creates an idle queue. Tasks may be submitted before Run; they
// start executing once the consumer is running.
func NewQueue(name string, log *logger.Logger) *Queue {
	q := &Queue{
		name: name,
		log:  log,
	}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// Name returns the name given to NewQueue.
func (q *Queue) Name() string {
	return q.name
}

// Run starts the consumer goroutine. Calling Run more than once, or after
// Stop, does nothing.
func (q *Queue) Run() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.started || q.closed {
		return
	}
	q.started = true

	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		q.loop()
	}()
}

// Submit appends task to the queue and returns immediately.
// It returns ErrQueueClosed once Stop has been called.
func (q *Queue) Submit(task func()) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return ErrQueueClosed
	}

	q.tasks = append(q.tasks, task)
	q.cond.Signal()
	return nil
}

// SubmitWait submits task and blocks until it has run.
// It must not be called from a task running on the same queue.
func (q *Queue) SubmitWait(task func()) error {
	done := make(chan struct{})
	if err := q.Submit(func() {
		defer close(done)
		task()
	}); err != nil {
		return err
	}

	<-done
	return nil
}

// Len reports the number of tasks waiting to run.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.tasks)
}

// Stop rejects further submissions, runs everything already queued and
// waits for the consumer to exit. If Run was never called the backlog is
// drained on the calling goroutine. Stop is safe to call more than once.
func (q *Queue) Stop() {
	q.mu.Lock()
	alreadyClosed := q.closed
	q.closed = true
	started := q.started
	q.cond.Broadcast()
	q.mu.Unlock()

	if !started && !alreadyClosed {
		q.loop()
	}

	q.wg.Wait()
}

func (q *Queue) loop() {
	for {
		task, ok := q.next()
		if !ok {
			return
		}
		q.execute(task)
	}
}

// next blocks until a task is available. It reports false once the queue
// is closed and empty.
func (q *Queue) next() (func(), bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for len(q.tasks) == 0 {
		if q.closed {
			return nil, false
		}
		q.cond.Wait()
	}

	task := q.tasks[0]
	q.tasks[0] = nil
	q.tasks = q.tasks[1:]
	return task, true
}

// execute runs task, keeping the consumer alive if it panics.
func (q *Queue) execute(task func()) {
	defer func() {
		if r := recover(); r != nil {
			q.log.Error().
				Str("func", "workers.Queue.execute").
				Str("queue", q.name).
				Interface("panic", r).
				Msg("task panicked")
		}
	}()

	task()
}
