// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// Storage holds the backend selected by configuration together with the
// resources it owns. The selection is fixed for the lifetime of the value.
type Storage struct {
	// Backend is the secure store handed to the credential store.
	Backend Backend

	closers []func() error
}

// NewStorage initialises the backend named by cfg.Storage:
//   - InMemory selects [MemoryBackend];
//   - otherwise Driver selects [KeychainBackend] (macOS only) or
//     [KeyringBackend], which also opens and migrates the SQLite index.
func NewStorage(ctx context.Context, cfg config.StructuredConfig, log *logger.Logger) (*Storage, error) {
	if cfg.Storage.InMemory {
		log.Info().Str("func", "NewStorage").Msg("using in-memory backend")
		return &Storage{Backend: NewMemoryBackend()}, nil
	}

	switch cfg.Storage.Driver {
	case config.DriverKeyring:
		return newKeyringStorage(ctx, cfg, log)
	case config.DriverKeychain:
		backend, err := newKeychainBackend(cfg.App.Namespace)
		if err != nil {
			return nil, err
		}
		log.Info().Str("func", "NewStorage").Str("namespace", cfg.App.Namespace).Msg("using keychain backend")
		return &Storage{Backend: backend}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Storage.Driver)
	}
}

func newKeyringStorage(ctx context.Context, cfg config.StructuredConfig, log *logger.Logger) (*Storage, error) {
	db, err := NewConnectSQLite(ctx, cfg.Storage.IndexDSN, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	log.Info().
		Str("func", "NewStorage").
		Str("namespace", cfg.App.Namespace).
		Str("index", cfg.Storage.IndexDSN).
		Msg("using keyring backend")

	return &Storage{
		Backend: NewKeyringBackend(NewIndex(db, cfg.App.Namespace), cfg.App.Namespace),
		closers: []func() error{db.Close},
	}, nil
}

// Close releases everything the storage opened.
func (s *Storage) Close() error {
	var errs []error
	for _, closeFn := range s.closers {
		errs = append(errs, closeFn())
	}
	s.closers = nil
	return errors.Join(errs...)
}
