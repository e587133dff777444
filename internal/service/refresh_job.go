// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/workers"
)

// Refresher reloads a store from its backend.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// RefreshJob reloads the credential store on a ticker so that items changed
// by other programs show up in a long-running UI.
type RefreshJob struct {
	store    Refresher
	interval time.Duration
	log      *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

var _ workers.Worker = (*RefreshJob)(nil)

// NewRefreshJob creates a RefreshJob that calls store.Refresh every
// interval. The job is idle until Run or Start is called. A non-positive
// interval disables it.
func NewRefreshJob(store Refresher, interval time.Duration, log *logger.Logger) *RefreshJob {
	return &RefreshJob{store: store, interval: interval, log: log}
}

// Run implements workers.Worker.
func (j *RefreshJob) Run() {
	j.Start(context.Background())
}

// Start stops any previously running loop, then launches a goroutine that
// refreshes the store every interval until ctx is cancelled or Stop is
// called. Refresh errors are logged and do not stop the loop.
func (j *RefreshJob) Start(ctx context.Context) {
	if j.interval <= 0 {
		return
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if err := j.store.Refresh(jobCtx); err != nil {
					j.log.Err(err).Str("func", "RefreshJob.Start").Msg("periodic refresh failed")
				}
			}
		}
	}()
}

// Stop cancels the loop and blocks until its goroutine has exited. Safe to
// call when the job is not running.
func (j *RefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
