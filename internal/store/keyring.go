// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

// KeyringBackend is the cross-platform persistent [Backend]. Secrets live in
// the OS keyring (Secret Service, Windows Credential Manager or macOS
// Keychain) under "<namespace>:<service>" / account. Everything else lives
// in the SQLite [Index], which is what QueryAll enumerates since keyrings
// cannot be listed portably.
type KeyringBackend struct {
	index     *Index
	namespace string
}

var _ Backend = (*KeyringBackend)(nil)

// NewKeyringBackend wires a keyring backend to an already migrated index.
func NewKeyringBackend(index *Index, namespace string) *KeyringBackend {
	return &KeyringBackend{
		index:     index,
		namespace: namespace,
	}
}

func (k *KeyringBackend) ringService(service string) string {
	return k.namespace + ":" + service
}

// Upsert replaces the index row and the keyring payload of c's business
// key. The index transaction commits only once the payload is stored; if
// the commit then fails, the previous payload is put back.
func (k *KeyringBackend) Upsert(ctx context.Context, c models.Credential) error {
	log := logger.FromContext(ctx)
	ringService := k.ringService(c.Service)

	previous, err := keyring.Get(ringService, c.Account)
	hadPrevious := err == nil
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		log.Err(err).
			Str("func", "KeyringBackend.Upsert").
			Object("credential", c).
			Msg("failed to read current keyring payload")
		return fmt.Errorf("%w: %w", ErrBackendWrite, err)
	}

	written := false
	err = k.index.Replace(ctx, c, func() error {
		if err := keyring.Set(ringService, c.Account, c.Secret); err != nil {
			return err
		}
		written = true
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "KeyringBackend.Upsert").
			Object("credential", c).
			Msg("failed to upsert credential")
		if written {
			k.restorePayload(ctx, ringService, c.Account, previous, hadPrevious)
		}
		return fmt.Errorf("%w: %w", ErrBackendWrite, err)
	}

	return nil
}

// restorePayload puts the keyring back the way it was before a failed
// Upsert, so payload and index row keep describing the same item.
func (k *KeyringBackend) restorePayload(ctx context.Context, ringService, account, previous string, hadPrevious bool) {
	var err error
	if hadPrevious {
		err = keyring.Set(ringService, account, previous)
	} else {
		err = keyring.Delete(ringService, account)
	}
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		logger.FromContext(ctx).Err(err).
			Str("func", "KeyringBackend.restorePayload").
			Str("account", account).
			Msg("failed to restore keyring payload")
	}
}

// QueryAll joins the index rows with their keyring payloads. Rows without a
// business key or without a payload are skipped.
func (k *KeyringBackend) QueryAll(ctx context.Context) ([]models.Credential, error) {
	log := logger.FromContext(ctx)

	rows, err := k.index.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBackendQuery, err)
	}

	result := make([]models.Credential, 0, len(rows))
	for _, row := range rows {
		if row.Service == "" || row.Account == "" {
			log.Warn().
				Str("func", "KeyringBackend.QueryAll").
				Str("id", row.ID).
				Msg("skipping index row without service or account")
			continue
		}

		secret, err := keyring.Get(k.ringService(row.Service), row.Account)
		if errors.Is(err, keyring.ErrNotFound) || (err == nil && secret == "") {
			log.Warn().
				Str("func", "KeyringBackend.QueryAll").
				Str("service", row.Service).
				Str("account", row.Account).
				Msg("skipping index row without keyring payload")
			continue
		}
		if err != nil {
			log.Err(err).
				Str("func", "KeyringBackend.QueryAll").
				Str("service", row.Service).
				Str("account", row.Account).
				Msg("failed to read keyring payload")
			return nil, fmt.Errorf("%w: %w", ErrBackendQuery, err)
		}

		row.Secret = secret
		if row.ID == "" {
			row.ID = utils.KeyID(k.namespace, row.Service, row.Account)
		}
		result = append(result, row)
	}

	return result, nil
}

// DeleteByKey removes both the index row and the keyring payload.
func (k *KeyringBackend) DeleteByKey(ctx context.Context, service, account string) error {
	log := logger.FromContext(ctx)

	if err := k.index.Remove(ctx, service, account); err != nil {
		return fmt.Errorf("%w: %w", ErrBackendDelete, err)
	}

	err := keyring.Delete(k.ringService(service), account)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		log.Err(err).
			Str("func", "KeyringBackend.DeleteByKey").
			Str("service", service).
			Str("account", account).
			Msg("failed to delete keyring payload")
		return fmt.Errorf("%w: %w", ErrBackendDelete, err)
	}

	return nil
}
