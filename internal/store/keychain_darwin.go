// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:build darwin

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	gokeychain "github.com/keybase/go-keychain"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

// KeychainBackend stores credentials as macOS generic-password items.
//
// Item layout:
//   - Service / Account: the business key
//   - Data:              the secret
//   - Comment:           notes
//   - Description:       record ID
//   - Label:             vault namespace, used to scope every query
//
// Items are device-only and never synchronized to iCloud.
type KeychainBackend struct {
	namespace string
}

var _ Backend = (*KeychainBackend)(nil)

// NewKeychainBackend creates a backend scoped to namespace.
func NewKeychainBackend(namespace string) *KeychainBackend {
	return &KeychainBackend{namespace: namespace}
}

// Upsert deletes any item under c's business key, then adds a fresh one.
func (k *KeychainBackend) Upsert(ctx context.Context, c models.Credential) error {
	log := logger.FromContext(ctx)

	if err := k.DeleteByKey(ctx, c.Service, c.Account); err != nil {
		return fmt.Errorf("%w: %w", ErrBackendWrite, err)
	}

	item := gokeychain.NewGenericPassword(c.Service, c.Account, k.namespace, []byte(c.Secret), "")
	item.SetComment(c.Notes)
	item.SetDescription(c.ID)
	item.SetSynchronizable(gokeychain.SynchronizableNo)
	item.SetAccessible(gokeychain.AccessibleWhenUnlockedThisDeviceOnly)

	if err := gokeychain.AddItem(item); err != nil {
		log.Err(err).
			Str("func", "KeychainBackend.Upsert").
			Object("credential", c).
			Msg("keychain add failed")
		return fmt.Errorf("%w: keychain add %s: %w", ErrBackendWrite, c.Key(), err)
	}

	return nil
}

// QueryAll returns every item labelled with the namespace. Items missing a
// service, account or payload are skipped.
func (k *KeychainBackend) QueryAll(ctx context.Context) ([]models.Credential, error) {
	log := logger.FromContext(ctx)

	query := gokeychain.NewItem()
	query.SetSecClass(gokeychain.SecClassGenericPassword)
	query.SetLabel(k.namespace)
	query.SetMatchLimit(gokeychain.MatchLimitAll)
	query.SetReturnAttributes(true)

	results, err := gokeychain.QueryItem(query)
	if errors.Is(err, gokeychain.ErrorItemNotFound) {
		return nil, nil
	}
	if err != nil {
		log.Err(err).Str("func", "KeychainBackend.QueryAll").Msg("keychain query failed")
		return nil, fmt.Errorf("%w: %w", ErrBackendQuery, err)
	}

	credentials := make([]models.Credential, 0, len(results))
	for _, r := range results {
		if r.Service == "" || r.Account == "" {
			log.Warn().
				Str("func", "KeychainBackend.QueryAll").
				Str("service", r.Service).
				Str("account", r.Account).
				Msg("skipping keychain item without service or account")
			continue
		}

		// Attributes and data are fetched separately: macOS rejects
		// ReturnData combined with MatchLimitAll.
		data, err := gokeychain.GetGenericPassword(r.Service, r.Account, k.namespace, "")
		if err != nil && !errors.Is(err, gokeychain.ErrorItemNotFound) {
			log.Err(err).
				Str("func", "KeychainBackend.QueryAll").
				Str("service", r.Service).
				Str("account", r.Account).
				Msg("keychain read failed")
			return nil, fmt.Errorf("%w: %w", ErrBackendQuery, err)
		}
		if len(data) == 0 {
			log.Warn().
				Str("func", "KeychainBackend.QueryAll").
				Str("service", r.Service).
				Str("account", r.Account).
				Msg("skipping keychain item without payload")
			continue
		}

		id := r.Description
		if id == "" {
			id = utils.KeyID(k.namespace, r.Service, r.Account)
		}

		modified := r.ModificationDate
		if modified.IsZero() {
			modified = time.Now()
		}

		credentials = append(credentials, models.Credential{
			ID:           id,
			Service:      r.Service,
			Account:      r.Account,
			Secret:       string(data),
			Notes:        r.Comment,
			LastModified: modified,
		})
	}

	return credentials, nil
}

// DeleteByKey removes the namespace's item under (service, account).
func (k *KeychainBackend) DeleteByKey(ctx context.Context, service, account string) error {
	log := logger.FromContext(ctx)

	item := gokeychain.NewItem()
	item.SetSecClass(gokeychain.SecClassGenericPassword)
	item.SetService(service)
	item.SetAccount(account)
	item.SetLabel(k.namespace)

	err := gokeychain.DeleteItem(item)
	if err != nil && !errors.Is(err, gokeychain.ErrorItemNotFound) {
		log.Err(err).
			Str("func", "KeychainBackend.DeleteByKey").
			Str("service", service).
			Str("account", account).
			Msg("keychain delete failed")
		return fmt.Errorf("%w: keychain delete %s/%s: %w", ErrBackendDelete, service, account, err)
	}

	return nil
}
