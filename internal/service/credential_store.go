// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/internal/workers"
	"github.com/MKhiriev/go-pass-vault/models"
)

// CredentialStore is the vault as the UI sees it: an observable list of
// credentials mirrored from a [store.Backend].
//
// Add and Delete return at once; their effect shows up in the published
// list, and on the returned channel, after the backend call completes. A
// failed backend call leaves the list untouched.
type CredentialStore struct {
	backend   store.Backend
	log       *logger.Logger
	ids       utils.IDGenerator
	now       func() time.Time
	stableIDs bool

	backendQueue *workers.Queue
	publishQueue *workers.Queue
	queues       *workers.Workers

	// Owned by publishQueue.
	records     []models.Credential
	pendingIDs  map[models.BusinessKey]string
	subscribers map[int]chan []models.Credential
	nextSubID   int

	lifecycle sync.RWMutex
	closed    bool
	inflight  sync.WaitGroup
	stopped   chan struct{}
}

// NewCredentialStore starts the store's queues and loads the backend
// contents before returning. The backend is fixed for the store's lifetime.
func NewCredentialStore(backend store.Backend, log *logger.Logger, opts ...Option) (*CredentialStore, error) {
	s := &CredentialStore{
		backend:     backend,
		log:         log,
		ids:         utils.NewUUIDGenerator(),
		now:         time.Now,
		pendingIDs:  make(map[models.BusinessKey]string),
		subscribers: make(map[int]chan []models.Credential),
		stopped:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.backendQueue = workers.NewQueue("backend", log)
	s.publishQueue = workers.NewQueue("publish", log)
	// backend first: its tasks feed the publish queue
	s.queues = workers.NewWorkers(s.backendQueue, s.publishQueue)
	s.queues.Run()

	if err := s.LoadAll(context.Background()); err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("%w: %w", ErrInitialLoad, err)
	}

	return s, nil
}

// ── Add ──────────────────────────────────────────────────────────────────────

// Add stores a credential under (service, account), replacing any record
// with the same business key. The caller must supply a non-empty service,
// account and secret.
//
// The returned channel yields exactly one Result and is then closed.
// Ignoring it is fine.
func (s *CredentialStore) Add(service, account, secret, notes string) <-chan Result {
	record := models.Credential{
		ID:           s.ids.Generate(),
		Service:      service,
		Account:      account,
		Secret:       secret,
		Notes:        notes,
		LastModified: s.now(),
	}

	if !s.begin() {
		return deliver(Result{Op: OpAdd, Record: record, Err: ErrStoreClosed})
	}

	out := make(chan Result, 1)
	s.submit(s.publishQueue, out, Result{Op: OpAdd, Record: record}, func() {
		s.resolveAdd(out, record)
	})
	return out
}

// resolveAdd runs on the publish queue.
func (s *CredentialStore) resolveAdd(out chan<- Result, record models.Credential) {
	if s.stableIDs {
		key := record.Key()
		if id, ok := s.pendingIDs[key]; ok {
			record.ID = id
		} else if i := s.indexByKey(key); i >= 0 {
			record.ID = s.records[i].ID
		}
		s.pendingIDs[key] = record.ID
	}

	s.submit(s.backendQueue, out, Result{Op: OpAdd, Record: record}, func() {
		s.writeAdd(out, record)
	})
}

// writeAdd runs on the backend queue.
func (s *CredentialStore) writeAdd(out chan<- Result, record models.Credential) {
	err := s.callBackend("CredentialStore.Add", store.ErrBackendWrite, func() error {
		return s.backend.Upsert(s.opContext(), record)
	})

	s.submit(s.publishQueue, out, Result{Op: OpAdd, Record: record, Err: err}, func() {
		s.applyAdd(out, record, err)
	})
}

// applyAdd runs on the publish queue.
func (s *CredentialStore) applyAdd(out chan<- Result, record models.Credential, err error) {
	key := record.Key()
	if s.stableIDs && s.pendingIDs[key] == record.ID {
		delete(s.pendingIDs, key)
	}

	if err != nil {
		s.log.Err(err).
			Str("func", "CredentialStore.Add").
			Object("credential", record).
			Msg("backend upsert failed, list unchanged")
		s.complete(out, Result{Op: OpAdd, Record: record, Err: err})
		return
	}

	if i := s.indexByKey(key); i >= 0 {
		s.records[i] = record
	} else {
		s.records = append(s.records, record)
	}
	s.notify()

	s.log.Debug().
		Str("func", "CredentialStore.Add").
		Object("credential", record).
		Msg("credential stored")
	s.complete(out, Result{Op: OpAdd, Record: record, Applied: true})
}

// ── Delete ───────────────────────────────────────────────────────────────────

// Delete removes the published record with the given ID. An unknown ID is
// a no-op: the backend is not touched and the Result reports Applied=false.
func (s *CredentialStore) Delete(id string) <-chan Result {
	if !s.begin() {
		return deliver(Result{Op: OpDelete, Err: ErrStoreClosed})
	}

	out := make(chan Result, 1)
	s.submit(s.publishQueue, out, Result{Op: OpDelete}, func() {
		s.resolveDelete(out, id)
	})
	return out
}

// resolveDelete runs on the publish queue.
func (s *CredentialStore) resolveDelete(out chan<- Result, id string) {
	i := s.indexByID(id)
	if i < 0 {
		s.log.Debug().
			Str("func", "CredentialStore.Delete").
			Str("id", id).
			Msg("no such credential")
		s.complete(out, Result{Op: OpDelete})
		return
	}

	target := s.records[i]
	s.submit(s.backendQueue, out, Result{Op: OpDelete, Record: target}, func() {
		s.writeDelete(out, target)
	})
}

// writeDelete runs on the backend queue.
func (s *CredentialStore) writeDelete(out chan<- Result, target models.Credential) {
	err := s.callBackend("CredentialStore.Delete", store.ErrBackendDelete, func() error {
		return s.backend.DeleteByKey(s.opContext(), target.Service, target.Account)
	})

	s.submit(s.publishQueue, out, Result{Op: OpDelete, Record: target, Err: err}, func() {
		s.applyDelete(out, target, err)
	})
}

// applyDelete runs on the publish queue. The record is removed by ID; if an
// Add issued earlier has since replaced it, the replacement is removed
// instead since the backend no longer holds the key either.
func (s *CredentialStore) applyDelete(out chan<- Result, target models.Credential, err error) {
	if err != nil {
		s.log.Err(err).
			Str("func", "CredentialStore.Delete").
			Object("credential", target).
			Msg("backend delete failed, list unchanged")
		s.complete(out, Result{Op: OpDelete, Record: target, Err: err})
		return
	}

	i := s.indexByID(target.ID)
	if i < 0 {
		i = s.indexByKey(target.Key())
	}
	if i < 0 {
		s.complete(out, Result{Op: OpDelete, Record: target})
		return
	}

	s.records = slices.Delete(s.records, i, i+1)
	s.notify()

	s.log.Debug().
		Str("func", "CredentialStore.Delete").
		Object("credential", target).
		Msg("credential deleted")
	s.complete(out, Result{Op: OpDelete, Record: target, Applied: true})
}

// ── Load ─────────────────────────────────────────────────────────────────────

// LoadAll replaces the published list with the backend contents and blocks
// until the new list is published. On failure the list is left as it was.
// The query runs after every Add and Delete issued before the call.
//
// If ctx ends first LoadAll returns ctx.Err(); the load still completes in
// the background.
func (s *CredentialStore) LoadAll(ctx context.Context) error {
	if !s.begin() {
		return ErrStoreClosed
	}

	done := make(chan error, 1)
	fail := func(err error) {
		done <- fmt.Errorf("%w: %w", ErrStoreClosed, err)
		s.inflight.Done()
	}

	// same path as Add and Delete: publish queue, backend queue, publish queue
	err := s.publishQueue.Submit(func() {
		if subErr := s.backendQueue.Submit(func() {
			s.queryAll(ctx, done, fail)
		}); subErr != nil {
			fail(subErr)
		}
	})
	if err != nil {
		fail(err)
	}

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// queryAll runs on the backend queue and hands the result to the publish
// queue.
func (s *CredentialStore) queryAll(ctx context.Context, done chan<- error, fail func(error)) {
	var records []models.Credential
	err := s.callBackend("CredentialStore.LoadAll", store.ErrBackendQuery, func() (err error) {
		records, err = s.backend.QueryAll(s.log.WithContext(ctx))
		return err
	})

	if subErr := s.publishQueue.Submit(func() {
		defer s.inflight.Done()
		if err != nil {
			s.log.Err(err).Str("func", "CredentialStore.LoadAll").Msg("backend query failed, list unchanged")
			done <- err
			return
		}
		s.records = slices.Clone(records)
		s.notify()
		s.log.Debug().Str("func", "CredentialStore.LoadAll").Int("count", len(records)).Msg("vault loaded")
		done <- nil
	}); subErr != nil {
		fail(subErr)
	}
}

// Refresh reloads the published list from the backend.
func (s *CredentialStore) Refresh(ctx context.Context) error {
	return s.LoadAll(ctx)
}

// ── Read side ────────────────────────────────────────────────────────────────

// Passwords returns a copy of the published list.
func (s *CredentialStore) Passwords() []models.Credential {
	var snapshot []models.Credential
	if err := s.publishQueue.SubmitWait(func() {
		snapshot = s.snapshot()
	}); err != nil {
		<-s.stopped
		return s.snapshot()
	}
	return snapshot
}

// Search returns the published records matching query. See [Filter].
func (s *CredentialStore) Search(query string) []models.Credential {
	return Filter(s.Passwords(), query)
}

// Subscribe returns a channel that receives a copy of the whole published
// list now and after every change. Only the latest list is kept: a slow
// reader skips intermediate versions. The channel is closed by cancel or by
// Close.
func (s *CredentialStore) Subscribe() (<-chan []models.Credential, func()) {
	ch := make(chan []models.Credential, 1)

	var id int
	if err := s.publishQueue.SubmitWait(func() {
		id = s.nextSubID
		s.nextSubID++
		s.subscribers[id] = ch
		ch <- s.snapshot()
	}); err != nil {
		close(ch)
		return ch, func() {}
	}

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			_ = s.publishQueue.Submit(func() {
				if _, ok := s.subscribers[id]; ok {
					delete(s.subscribers, id)
					close(ch)
				}
			})
		})
	}

	return ch, cancel
}

// ── Lifecycle ────────────────────────────────────────────────────────────────

// Close waits for every issued operation to finish, stops both queues and
// closes all subscriber channels. Operations issued afterwards report
// ErrStoreClosed. Close is safe to call more than once.
func (s *CredentialStore) Close() error {
	s.lifecycle.Lock()
	if s.closed {
		s.lifecycle.Unlock()
		<-s.stopped
		return nil
	}
	s.closed = true
	s.lifecycle.Unlock()

	s.inflight.Wait()
	s.queues.Stop()

	for id, ch := range s.subscribers {
		close(ch)
		delete(s.subscribers, id)
	}
	close(s.stopped)

	s.log.Debug().Str("func", "CredentialStore.Close").Msg("credential store closed")
	return nil
}

// begin registers an operation with Close. It reports false once the store
// is closed.
func (s *CredentialStore) begin() bool {
	s.lifecycle.RLock()
	defer s.lifecycle.RUnlock()

	if s.closed {
		return false
	}
	s.inflight.Add(1)
	return true
}

// submit queues task on q. If q refuses it the operation completes with
// ErrStoreClosed.
func (s *CredentialStore) submit(q *workers.Queue, out chan<- Result, res Result, task func()) {
	if err := q.Submit(task); err != nil {
		res.Err = fmt.Errorf("%w: %w", ErrStoreClosed, err)
		s.complete(out, res)
	}
}

func (s *CredentialStore) complete(out chan<- Result, res Result) {
	out <- res
	close(out)
	s.inflight.Done()
}

// callBackend runs one backend call on the backend queue. A panic in the
// backend is turned into an error wrapping sentinel, so the operation
// completes through the normal failure path.
func (s *CredentialStore) callBackend(fn string, sentinel error, call func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error().
				Str("func", fn).
				Interface("panic", r).
				Msg("backend call panicked")
			err = fmt.Errorf("%w: panic: %v", sentinel, r)
		}
	}()

	return call()
}

func (s *CredentialStore) opContext() context.Context {
	return s.log.WithContext(context.Background())
}

// ── publish-queue helpers ────────────────────────────────────────────────────

func (s *CredentialStore) snapshot() []models.Credential {
	return append(make([]models.Credential, 0, len(s.records)), s.records...)
}

func (s *CredentialStore) notify() {
	for _, ch := range s.subscribers {
		select {
		case <-ch:
		default:
		}
		ch <- s.snapshot()
	}
}

func (s *CredentialStore) indexByID(id string) int {
	return slices.IndexFunc(s.records, func(c models.Credential) bool {
		return c.ID == id
	})
}

func (s *CredentialStore) indexByKey(key models.BusinessKey) int {
	return slices.IndexFunc(s.records, func(c models.Credential) bool {
		return c.Key() == key
	})
}
