// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when a
// configuration group is incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid vault-wide settings
	// (for example, an empty namespace).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, the keyring driver without an index DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrUnknownDriver indicates a Storage.Driver value that names no backend.
	ErrUnknownDriver = errors.New("unknown storage driver")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a negative refresh interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidUIConfigs indicates invalid UI settings
	// (for example, a generated length below the generator minimum).
	ErrInvalidUIConfigs = errors.New("invalid ui configuration")
	// ErrInvalidLogConfigs indicates an unparsable log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
