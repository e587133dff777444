// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"slices"
	"sync"

	"github.com/MKhiriev/go-pass-vault/models"
)

// MemoryBackend is a process-local [Backend] that keeps records in
// insertion order. Nothing is persisted. It is used by tests and by the
// --in-memory mode.
//
// An upsert of an existing key removes the old record and appends the new
// one, the same delete-then-add the persistent backends perform.
type MemoryBackend struct {
	mu      sync.Mutex
	records []models.Credential
}

var _ Backend = (*MemoryBackend)(nil)

// NewMemoryBackend creates an empty in-memory backend, optionally seeded
// with records.
func NewMemoryBackend(seed ...models.Credential) *MemoryBackend {
	return &MemoryBackend{records: slices.Clone(seed)}
}

func (m *MemoryBackend) Upsert(_ context.Context, c models.Credential) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records = slices.DeleteFunc(m.records, c.SameKey)
	m.records = append(m.records, c)
	return nil
}

func (m *MemoryBackend) QueryAll(_ context.Context) ([]models.Credential, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return slices.Clone(m.records), nil
}

func (m *MemoryBackend) DeleteByKey(_ context.Context, service, account string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records = slices.DeleteFunc(m.records, func(c models.Credential) bool {
		return c.Service == service && c.Account == account
	})
	return nil
}

// Len reports how many records are stored.
func (m *MemoryBackend) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.records)
}
