// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/utils"
)

// Option configures a CredentialStore.
type Option func(*CredentialStore)

// WithStableIDs makes Add reuse the ID of an existing record with the same
// business key instead of minting a new one.
func WithStableIDs(stable bool) Option {
	return func(s *CredentialStore) {
		s.stableIDs = stable
	}
}

// WithIDGenerator replaces the UUIDv7 generator.
func WithIDGenerator(ids utils.IDGenerator) Option {
	return func(s *CredentialStore) {
		s.ids = ids
	}
}

// WithClock replaces time.Now as the source of LastModified.
func WithClock(now func() time.Time) Option {
	return func(s *CredentialStore) {
		s.now = now
	}
}
