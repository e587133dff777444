// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/password"
	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] is usable
// before the vault starts.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.Namespace == "" {
		return fmt.Errorf("%w: empty namespace", ErrInvalidAppConfigs)
	}

	if !cfg.Storage.InMemory {
		switch cfg.Storage.Driver {
		case DriverKeychain:
		case DriverKeyring:
			if cfg.Storage.IndexDSN == "" {
				return fmt.Errorf("%w: keyring driver needs an index DSN", ErrInvalidStorageConfigs)
			}
		default:
			return fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Storage.Driver)
		}
	}

	if cfg.Workers.RefreshInterval < 0 {
		return fmt.Errorf("%w: negative refresh interval", ErrInvalidWorkerConfigs)
	}

	if cfg.UI.GeneratedLength < password.MinLength {
		return fmt.Errorf("%w: generated length %d is below %d",
			ErrInvalidUIConfigs, cfg.UI.GeneratedLength, password.MinLength)
	}

	if cfg.UI.ClipboardClearAfter < 0 {
		return fmt.Errorf("%w: negative clipboard clear delay", ErrInvalidUIConfigs)
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}

	return nil
}
