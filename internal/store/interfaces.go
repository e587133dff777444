// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/backend_mock.go -package=mock

// Backend is the secure storage boundary of the vault. Records are keyed by
// their (Service, Account) business key.
//
// Implementations do no internal locking: the credential store calls a
// backend from a single worker goroutine only.
type Backend interface {
	// Upsert replaces the record stored under the business key of c, or
	// inserts it when none exists.
	Upsert(ctx context.Context, c models.Credential) error

	// QueryAll returns every stored record in unspecified order. Entries
	// that cannot be decoded are skipped and logged.
	QueryAll(ctx context.Context) ([]models.Credential, error)

	// DeleteByKey removes the record stored under (service, account).
	// Deleting a missing key is not an error.
	DeleteByKey(ctx context.Context, service, account string) error
}
